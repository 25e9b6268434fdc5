package parser

import (
	"testing"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusPageFixture = `<html><body>
<h1>Router Status</h1>
<table>
  <tr><th>Item</th><th>Status</th></tr>
  <tr><td>  Cable Modem  Status </td><td> Operational </td></tr>
  <tr><td>Primary downstream channel</td><td>Locked</td></tr>
  <tr><td>Boot Version</td><td>1.2.3</td></tr>
</table>
<table>
  <tr><th>Channel ID</th><th>Direction</th><th>Version</th><th>Frequency</th></tr>
  <tr><td>1</td><td>Downstream</td><td>DOCSIS 3.0</td><td>139000000</td></tr>
  <tr><td>2</td><td>Downstream</td><td>DOCSIS 3.0</td><td>147000000</td></tr>
  <tr><td>3</td><td>Downstream</td><td>DOCSIS 3.0</td><td>155000000</td></tr>
  <tr><td>33</td><td>Downstream</td><td>DOCSIS 3.1</td><td>96000000</td></tr>
  <tr><td>1</td><td>Upstream</td><td>DOCSIS 3.0</td><td>25800000</td></tr>
  <tr><td>2</td><td>Upstream</td><td>DOCSIS 3.0</td><td>32300000</td></tr>
</table>
</body></html>`

func TestStatusPageParser_Parse(t *testing.T) {
	t.Parallel()

	p, err := ForShape(common.ShapeHTMLStatus)
	require.NoError(t, err)

	t.Run("full page", func(t *testing.T) {
		raw, err := p.Parse([]byte(statusPageFixture))
		require.NoError(t, err)

		assert.Equal(t, "Operational", raw[metrics.KeyCableModemStatus])
		assert.Equal(t, "Locked", raw[metrics.KeyPrimaryDownstreamChannel])

		// counts come from tallying the channel rows, not from a summary cell
		assert.Equal(t, "3", raw[metrics.KeyDocsis30Downstream])
		assert.Equal(t, "2", raw[metrics.KeyDocsis30Upstream])
		assert.Equal(t, "1", raw[metrics.KeyDocsis31Downstream])
		assert.Equal(t, "0", raw[metrics.KeyDocsis31Upstream])
	})
	t.Run("page without the status table yields an empty map, not an error", func(t *testing.T) {
		raw, err := p.Parse([]byte(`<html><body><h1>Login required</h1></body></html>`))
		require.NoError(t, err)
		assert.Empty(t, raw)
	})
	t.Run("summary count cells are not mistaken for channel rows", func(t *testing.T) {
		body := []byte(`<html><body><table>
			<tr><td>DOCSIS 3.0 channels Downstream</td><td>31</td></tr>
			<tr><td>DOCSIS 3.0 channels Upstream</td><td>4</td></tr>
		</table></body></html>`)

		raw, err := p.Parse(body)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})
	t.Run("version and direction can sit in a single cell", func(t *testing.T) {
		body := []byte(`<html><body><table>
			<tr><td>1</td><td>DOCSIS 3.1 Downstream</td><td>96000000</td></tr>
			<tr><td>2</td><td>DOCSIS 3.1 Downstream</td><td>97000000</td></tr>
		</table></body></html>`)

		raw, err := p.Parse(body)
		require.NoError(t, err)
		assert.Equal(t, "2", raw[metrics.KeyDocsis31Downstream])
		assert.Equal(t, "0", raw[metrics.KeyDocsis30Downstream])
		assert.Equal(t, "0", raw[metrics.KeyDocsis30Upstream])
		assert.Equal(t, "0", raw[metrics.KeyDocsis31Upstream])
	})
	t.Run("nested markup and label variation are tolerated", func(t *testing.T) {
		body := []byte(`<html><body><table>
			<tr><td><b>CABLE MODEM STATUS:</b></td><td><span>Online</span></td></tr>
		</table></body></html>`)

		raw, err := p.Parse(body)
		require.NoError(t, err)
		assert.Equal(t, "Online", raw[metrics.KeyCableModemStatus])
	})
	t.Run("first matching row wins over later duplicates", func(t *testing.T) {
		body := []byte(`<html><body><table>
			<tr><td>Cable Modem Status</td><td>Operational</td></tr>
			<tr><td>Cable Modem Status</td><td>Stale copy</td></tr>
		</table></body></html>`)

		raw, err := p.Parse(body)
		require.NoError(t, err)
		assert.Equal(t, "Operational", raw[metrics.KeyCableModemStatus])
	})
	t.Run("truncated markup still parses leniently", func(t *testing.T) {
		body := []byte(`<html><table><tr><td>Cable Modem Status</td><td>Online`)

		raw, err := p.Parse(body)
		require.NoError(t, err)
		assert.Equal(t, "Online", raw[metrics.KeyCableModemStatus])
	})
}
