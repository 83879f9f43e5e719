package timestamps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSummary(t *testing.T) {
	summary := "## Summary\n" +
		"The video opens with a welcome. The host introduces the topic [00:15]. Then a demo follows [02:30].\n" +
		"- **Setup** covers installation [01:10]\n" +
		"[05:00] Closing thoughts and questions\n" +
		"A bad tag [1:75] and a late one [3:00:00].\n"

	found := ScanSummary(summary, 7200, 0)

	require.Len(t, found, 4)

	assert.Equal(t, "The host introduces the topic", found[0].Description)
	assert.Equal(t, 15, found[0].Seconds)
	assert.Equal(t, strings.Index(summary, "[00:15]"), found[0].TextPosition)

	assert.Equal(t, "Then a demo follows", found[1].Description)
	assert.Equal(t, 150, found[1].Seconds)

	assert.Equal(t, "Setup covers installation", found[2].Description)
	assert.Equal(t, 70, found[2].Seconds)

	assert.Equal(t, "Closing thoughts and questions", found[3].Description)
	assert.Equal(t, 300, found[3].Seconds)

	for i := 1; i < len(found); i++ {
		assert.Less(t, found[i-1].TextPosition, found[i].TextPosition)
	}
}

func TestScanSummaryKeepsSummaryOrder(t *testing.T) {
	summary := "Conclusion first [09:00]. Then the intro [00:00]."

	found := ScanSummary(summary, 7200, 0)

	require.Len(t, found, 2)
	assert.Equal(t, 540, found[0].Seconds)
	assert.Equal(t, 0, found[1].Seconds)
}

func TestScanSummaryCeiling(t *testing.T) {
	summary := "Early point [00:30]. Late point [10:00]."

	found := ScanSummary(summary, 300, 0)

	require.Len(t, found, 1)
	assert.Equal(t, 30, found[0].Seconds)
}

func TestScanSummaryNoTags(t *testing.T) {
	assert.Empty(t, ScanSummary("A summary without any tags.", 7200, 0))
}
