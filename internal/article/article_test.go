package article

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const watchface = `**Watch Face**

I wanted a face that reads at a glance.
It took a few tries to get the picture I had in mind.

**Process**

**Settings.** I moved everything toward the interface people already know.

Most of the time went into polishing the launch animation.

* Built over three weekends.
`

func TestParseStructure(t *testing.T) {
	a := Parse([]byte(watchface))

	require.Equal(t, "Watch Face", a.Title)
	require.Equal(t, []Block{
		{Kind: Paragraph, Text: "I wanted a face that reads at a glance. It took a few tries to get the picture I had in mind."},
		{Kind: Heading, Text: "Process"},
		{Kind: Subheading, Text: "Settings."},
		{Kind: Paragraph, Text: "I moved everything toward the interface people already know."},
		{Kind: Paragraph, Text: "Most of the time went into polishing the launch animation."},
	}, a.Blocks)
	require.Equal(t, []string{"Built over three weekends."}, a.Footnotes)
}

func TestMarkdownHeadingsAndStarFootnotes(t *testing.T) {
	src := "# Title\n\n## Part one\n\nBody *with* emphasis.\n\n*unbalanced note\n\n- plain item\n"
	a := Parse([]byte(src))

	require.Equal(t, "Title", a.Title)
	require.Equal(t, []Block{
		{Kind: Heading, Text: "Part one"},
		{Kind: Paragraph, Text: "Body with emphasis."},
		{Kind: Paragraph, Text: "plain item"},
	}, a.Blocks)
	require.Equal(t, []string{"unbalanced note"}, a.Footnotes)
}

func TestWithMediaInsertsAfterAnchor(t *testing.T) {
	a := Parse([]byte(watchface)).WithMedia([]Insert{
		{After: "picture I had in mind", Label: "Photo · First face", Aspect: 4.0 / 3.0},
		{After: "launch animation", Label: "Video · Launch", Aspect: 16.0 / 9.0},
		{After: "never appears", Label: "Missing"},
	})

	require.Len(t, a.Blocks, 7)
	require.Equal(t, Block{Kind: Media, Text: "Photo · First face", Aspect: 4.0 / 3.0}, a.Blocks[1])
	require.Equal(t, Media, a.Blocks[6].Kind)
	require.Equal(t, "Video · Launch", a.Blocks[6].Text)
}

func TestWithMediaRepeatsForEveryAnchor(t *testing.T) {
	src := "**Title**\n\nfirst anchor here\n\nsecond anchor here\n\n*single star note*\n"
	a := Parse([]byte(src)).WithMedia([]Insert{{After: "anchor", Label: "Clip", Aspect: 1}})

	clip := Block{Kind: Media, Text: "Clip", Aspect: 1}
	require.Equal(t, []Block{
		{Kind: Paragraph, Text: "first anchor here"},
		clip,
		{Kind: Paragraph, Text: "second anchor here"},
		clip,
	}, a.Blocks)
	require.Equal(t, []string{"single star note"}, a.Footnotes)
}

func TestEscapedStarIsFootnote(t *testing.T) {
	a := Parse([]byte("**Title**\n\n\\* escaped note\n\n**bold** lead and text\n"))

	require.Equal(t, []string{"escaped note"}, a.Footnotes)
	require.Equal(t, []Block{
		{Kind: Subheading, Text: "bold"},
		{Kind: Paragraph, Text: "lead and text"},
	}, a.Blocks)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.md")
	require.NoError(t, os.WriteFile(path, []byte(watchface), 0o644))

	a, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "Watch Face", a.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.md"), nil)
	require.Error(t, err)
}

func TestParseAspect(t *testing.T) {
	for in, want := range map[string]float64{
		"4:3":    4.0 / 3.0,
		"16/10":  1.6,
		"video":  16.0 / 9.0,
		"square": 1,
	} {
		got, err := ParseAspect(in)
		require.NoError(t, err, in)
		require.InDelta(t, want, got, 1e-9, in)
	}

	for _, bad := range []string{"wide", "0:1", "a:b"} {
		_, err := ParseAspect(bad)
		require.Error(t, err, bad)
	}
}
