package main

import "github.com/killallgit/videomind-api/cmd"

// @title           VideoMind API
// @version         1.0.0
// @description     Video analysis API: summaries, timestamps, question answering and visual search for YouTube videos
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/videomind-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
