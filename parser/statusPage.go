package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"golang.org/x/net/html"
)

// Label fragments recognized in the two-column part of the status table.
// Matching is done on lowercased, whitespace-collapsed text so the parser
// survives the label variations seen across firmware revisions.
var statusLabels = []struct {
	fragment string
	key      string
}{
	{fragment: "cable modem status", key: metrics.KeyCableModemStatus},
	{fragment: "primary downstream channel", key: metrics.KeyPrimaryDownstreamChannel},
}

var channelTallyKeys = map[string]string{
	"3.0|downstream": metrics.KeyDocsis30Downstream,
	"3.0|upstream":   metrics.KeyDocsis30Upstream,
	"3.1|downstream": metrics.KeyDocsis31Downstream,
	"3.1|upstream":   metrics.KeyDocsis31Upstream,
}

type statusPageParser struct{}

// Parse extracts the status fields from the device's HTML status page.
// Channel counts are tallied from the individual channel rows, per DOCSIS
// version and direction, the same way the router UI counts them; summary
// cells are deliberately not read. A page without any recognizable table
// yields an empty map, not an error.
func (p *statusPageParser) Parse(body []byte) (common.RawFieldMap, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("malformed status page: %w", err)
	}

	raw := make(common.RawFieldMap)
	tallies := make(map[string]int, len(channelTallyKeys))
	sawChannelRow := false

	for _, cells := range tableRows(doc) {
		if len(cells) == 2 {
			matchStatusRow(raw, cells[0], cells[1])
			continue
		}
		if len(cells) >= 3 {
			version, direction, matched := channelRowTags(cells)
			if !matched {
				continue
			}
			tallies[version+"|"+direction]++
			sawChannelRow = true
		}
	}

	// Zero is a valid tally once the channel table itself was seen
	if sawChannelRow {
		for tag, fieldKey := range channelTallyKeys {
			raw[fieldKey] = strconv.Itoa(tallies[tag])
		}
	}

	return raw, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *statusPageParser) IsInterfaceNil() bool {
	return p == nil
}

func matchStatusRow(raw common.RawFieldMap, label string, value string) {
	loweredLabel := strings.ToLower(label)
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}

	for _, status := range statusLabels {
		if !strings.Contains(loweredLabel, status.fragment) {
			continue
		}
		if _, taken := raw[status.key]; taken {
			return
		}
		raw[status.key] = trimmed
		return
	}
}

func channelRowTags(cells []string) (string, string, bool) {
	var version string
	var direction string

	for _, cell := range cells {
		lowered := strings.ToLower(cell)
		switch {
		case strings.Contains(lowered, "docsis 3.1") || lowered == "3.1":
			version = "3.1"
		case strings.Contains(lowered, "docsis 3.0") || lowered == "3.0":
			version = "3.0"
		}
		switch {
		case strings.Contains(lowered, "downstream"):
			direction = "downstream"
		case strings.Contains(lowered, "upstream"):
			direction = "upstream"
		}
	}

	return version, direction, version != "" && direction != ""
}

func tableRows(doc *html.Node) [][]string {
	var rows [][]string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			rows = append(rows, rowCells(node))
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return rows
}

func rowCells(row *html.Node) []string {
	var cells []string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "td" || node.Data == "th") {
			cells = append(cells, cellText(node))
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(row)

	return cells
}

func cellText(cell *html.Node) string {
	var builder strings.Builder
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
			builder.WriteString(" ")
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(cell)

	return strings.Join(strings.Fields(builder.String()), " ")
}
