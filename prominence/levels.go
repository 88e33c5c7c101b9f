package prominence

import (
	"context"
	"strconv"
	"strings"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
)

// captionLength is the nickname prefix accepted by the levels filter.
const captionLength = 10

// Level is the standing of one identity, within a campaign or overall.
type Level struct {
	Campaign string
	CPK      types.Address
	NickName string
	Points   float64
	// Prominence in percent.
	Prominence float64
	// Reward in coins, set for totals only.
	Reward float64
}

// Label renders the level the way the leaderboard shows it.
func (l Level) Label() string {
	if l.Campaign == "" {
		return string(l.CPK) + " [" + l.NickName + "]: " + types.RoundToString(l.Prominence, 3) + "%"
	}
	return l.Campaign + ": " + string(l.CPK) + " [" + l.NickName + "], Pts: " +
		types.RoundToString(l.Points, 2) + " = " + types.RoundToString(l.Prominence, 2) + "%"
}

type DiaryEntry struct {
	CPK      types.Address
	NickName string
	Entry    string
}

type Report struct {
	Height  types.Height
	Details []Level
	Diaries []DiaryEntry
	Totals  []Level
}

// Levels assesses the window ending at height and reports the standings.
// A non-empty nick restricts the report to identities whose nickname or its
// short caption equals nick.
func (e *Engine) Levels(ctx context.Context, height types.Height, nick string) (*Report, error) {
	c, err := e.Assess(ctx, height, false)
	if err != nil {
		return nil, err
	}
	report := &Report{Height: height}
	match := func(name string) bool {
		return nick == "" || name == nick || caption(name) == nick
	}
	for _, row := range rows(c.Get(contract.TagDetails)) {
		if len(row) < 6 || !match(row[4]) {
			continue
		}
		report.Details = append(report.Details, Level{
			Campaign:   row[0],
			CPK:        types.Address(row[1]),
			NickName:   row[4],
			Points:     parseFloat(row[2]),
			Prominence: parseFloat(row[3]) * 100,
		})
	}
	for _, line := range strings.Split(c.Get(contract.TagDiaries), "\n") {
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 3 || !match(parts[1]) {
			continue
		}
		report.Diaries = append(report.Diaries, DiaryEntry{
			CPK:      types.Address(parts[0]),
			NickName: parts[1],
			Entry:    parts[2],
		})
	}
	for _, row := range rows(c.Get(contract.TagData)) {
		if len(row) < 6 || !match(row[4]) {
			continue
		}
		report.Totals = append(report.Totals, Level{
			CPK:        types.Address(row[1]),
			NickName:   row[4],
			Points:     parseFloat(row[2]),
			Prominence: parseFloat(row[3]) * 100,
			Reward:     parseFloat(row[5]),
		})
	}
	return report, nil
}

func rows(body string) [][]string {
	var rst [][]string
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			continue
		}
		rst = append(rst, strings.Split(line, "|"))
	}
	return rst
}

func caption(s string) string {
	if r := []rune(s); len(r) > captionLength {
		return string(r[:captionLength])
	}
	return s
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
