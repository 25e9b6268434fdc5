package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/config"
	"github.com/iulianpascalau/arris-modem-monitoring/fetcher"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/iulianpascalau/arris-modem-monitoring/testsCommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedErr = errors.New("expected error")

func testEndpoints() []common.EndpointDescriptor {
	return []common.EndpointDescriptor{
		{
			Name:   "troubleshoot",
			Path:   "/php/connection_troubleshoot_data.php",
			Shape:  common.ShapeJSONObject,
			Fields: []string{metrics.KeyCableModemStatus, metrics.KeyFailSafeMode},
		},
		{
			Name:   "status-page",
			Path:   "/",
			Shape:  common.ShapeHTMLStatus,
			Fields: []string{metrics.KeyCableModemStatus, metrics.KeyPrimaryDownstreamChannel},
		},
	}
}

func TestNewMonitorEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil fetcher should error", func(t *testing.T) {
		instance, err := NewMonitorEngine(nil, testEndpoints(), time.Second)
		assert.Nil(t, instance)
		assert.Equal(t, errNilFetcher, err)
	})
	t.Run("empty endpoint table should error", func(t *testing.T) {
		instance, err := NewMonitorEngine(&testsCommon.FetcherStub{}, nil, time.Second)
		assert.Nil(t, instance)
		assert.Equal(t, errEmptyTable, err)
	})
	t.Run("invalid timeout should error", func(t *testing.T) {
		instance, err := NewMonitorEngine(&testsCommon.FetcherStub{}, testEndpoints(), 0)
		assert.Nil(t, instance)
		assert.Equal(t, errInvalidTimeout, err)
	})
	t.Run("unknown payload shape should error", func(t *testing.T) {
		endpoints := testEndpoints()
		endpoints[0].Shape = "csv"

		instance, err := NewMonitorEngine(&testsCommon.FetcherStub{}, endpoints, time.Second)
		assert.Nil(t, instance)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "troubleshoot")
	})
	t.Run("should work", func(t *testing.T) {
		instance, err := NewMonitorEngine(&testsCommon.FetcherStub{}, testEndpoints(), time.Second)
		assert.NoError(t, err)
		assert.NotNil(t, instance)
	})
}

func TestMonitorEngine_Poll(t *testing.T) {
	t.Parallel()

	t.Run("all endpoints fail yields unavailable and no fields", func(t *testing.T) {
		stub := &testsCommon.FetcherStub{
			FetchPrimedHandler: func(_ context.Context, _ string, _ string) ([]byte, error) {
				return nil, expectedErr
			},
		}
		instance, _ := NewMonitorEngine(stub, testEndpoints(), time.Second)

		result := instance.Poll(context.Background())
		assert.Equal(t, common.HealthUnavailable, result.Health)
		assert.Empty(t, result.Snapshot.Fields)
		require.Len(t, result.Outcomes, 2)
		for _, outcome := range result.Outcomes {
			assert.Equal(t, common.OutcomeNetworkError, outcome.Kind)
			assert.Equal(t, expectedErr.Error(), outcome.Message)
		}
		assert.Equal(t,
			[]string{metrics.KeyCableModemStatus, metrics.KeyFailSafeMode, metrics.KeyPrimaryDownstreamChannel},
			result.UnreachableFields)
	})
	t.Run("one endpoint down yields degraded but keeps the other's fields", func(t *testing.T) {
		stub := &testsCommon.FetcherStub{
			FetchPrimedHandler: func(_ context.Context, _ string, path string) ([]byte, error) {
				if path == "/" {
					return nil, expectedErr
				}

				return []byte(`{"js_cm_oper_value":"5","js_fail_safe_mode":"0"}`), nil
			},
		}
		instance, _ := NewMonitorEngine(stub, testEndpoints(), time.Second)

		result := instance.Poll(context.Background())
		assert.Equal(t, common.HealthDegraded, result.Health)
		assert.Equal(t, "Online", result.Snapshot.Fields[metrics.KeyCableModemStatus].Value)
		assert.Equal(t, "Inactive", result.Snapshot.Fields[metrics.KeyFailSafeMode].Value)
		assert.Equal(t, []string{metrics.KeyPrimaryDownstreamChannel}, result.UnreachableFields)
	})
	t.Run("a parse failure never aborts the cycle", func(t *testing.T) {
		stub := &testsCommon.FetcherStub{
			FetchPrimedHandler: func(_ context.Context, _ string, path string) ([]byte, error) {
				if path == "/" {
					return []byte(`<html><table><tr><td>Cable Modem Status</td><td>Operational</td></tr></table></html>`), nil
				}

				return []byte(`this is not json`), nil
			},
		}
		instance, _ := NewMonitorEngine(stub, testEndpoints(), time.Second)

		result := instance.Poll(context.Background())
		assert.Equal(t, common.HealthDegraded, result.Health)
		assert.Equal(t, common.OutcomeParseError, result.Outcomes[0].Kind)
		assert.Equal(t, common.OutcomeSuccess, result.Outcomes[1].Kind)
		assert.Equal(t, "Operational", result.Snapshot.Fields[metrics.KeyCableModemStatus].Value)
		assert.Equal(t, "status-page", result.Snapshot.Fields[metrics.KeyCableModemStatus].Source)
	})
	t.Run("higher priority endpoint wins the merge", func(t *testing.T) {
		stub := &testsCommon.FetcherStub{
			FetchPrimedHandler: func(_ context.Context, _ string, path string) ([]byte, error) {
				if path == "/" {
					return []byte(`<html><table><tr><td>Cable Modem Status</td><td>Stale copy</td></tr></table></html>`), nil
				}

				return []byte(`{"js_cm_oper_value":"5"}`), nil
			},
		}
		instance, _ := NewMonitorEngine(stub, testEndpoints(), time.Second)

		result := instance.Poll(context.Background())
		assert.Equal(t, common.HealthHealthy, result.Health)
		assert.Equal(t, "Online", result.Snapshot.Fields[metrics.KeyCableModemStatus].Value)
		assert.Equal(t, "troubleshoot", result.Snapshot.Fields[metrics.KeyCableModemStatus].Source)
	})
	t.Run("empty payloads degrade the verdict without failing", func(t *testing.T) {
		stub := &testsCommon.FetcherStub{
			FetchPrimedHandler: func(_ context.Context, _ string, path string) ([]byte, error) {
				if path == "/" {
					return []byte(`<html><table><tr><td>Cable Modem Status</td><td>Operational</td></tr></table></html>`), nil
				}

				return []byte(`{}`), nil
			},
		}
		instance, _ := NewMonitorEngine(stub, testEndpoints(), time.Second)

		result := instance.Poll(context.Background())
		assert.Equal(t, common.HealthDegraded, result.Health)
		assert.Equal(t, common.OutcomeEmpty, result.Outcomes[0].Kind)
		assert.Equal(t, "Operational", result.Snapshot.Fields[metrics.KeyCableModemStatus].Value)
	})
}

func TestMonitorEngine_PollAgainstDevice(t *testing.T) {
	t.Parallel()

	device := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`<html><body><table>
				<tr><td>Cable Modem Status</td><td>Operational</td></tr>
				<tr><td>Primary Downstream Channel</td><td>Locked</td></tr>
			</table></body></html>`))
		case "/php/ajaxGet_device_networkstatus_data.php":
			_, _ = w.Write([]byte(`["1","Honor","Locked","591000000",118,"Allowed","16","Enabled",` +
				`"DOCSIS 3.1","bpi.cm","3","402500000","42600","0","4","36000000","42600","0","42600",` +
				`"Best Effort","","","","","","4","31","1","0",""]`))
		case "/php/connection_troubleshoot_data.php":
			_, _ = w.Write([]byte(`{"js_cm_oper_value":"5","js_cm_reg_value":"6",` +
				`"js_wan_ip_prov_mode":"0","js_fail_safe_mode":"0","js_NoRF_Detected":"0"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer device.Close()

	host := strings.TrimPrefix(device.URL, "http://")
	deviceFetcher, err := fetcher.NewHTTPFetcher(host, time.Second*2)
	require.NoError(t, err)

	instance, err := NewMonitorEngine(deviceFetcher, config.DefaultEndpoints(), time.Second*2)
	require.NoError(t, err)

	result := instance.Poll(context.Background())
	require.Equal(t, common.HealthHealthy, result.Health)

	fields := result.Snapshot.Fields
	assert.Equal(t, "Virgin Media", fields[metrics.KeyISPProvider].Value)
	assert.Equal(t, "Online", fields[metrics.KeyCableModemStatus].Value)
	assert.Equal(t, "Operational", fields[metrics.KeyCableModemRegistration].Value)
	assert.Equal(t, "DHCP", fields[metrics.KeyWANIPProvisionMode].Value)
	assert.Equal(t, "Locked", fields[metrics.KeyPrimaryDownstreamChannel].Value)
	assert.Equal(t, "DOCSIS 3.1", fields[metrics.KeyDocsisVersion].Value)
	assert.Equal(t, "31", fields[metrics.KeyDocsis30Downstream].Value)
	assert.Equal(t, "32", fields[metrics.KeyTotalDownstreamChannels].Value)
	assert.Equal(t, "derived", fields[metrics.KeyTotalDownstreamChannels].Source)
	assert.Empty(t, result.UnreachableFields)
}

func TestMonitorEngine_VerifyConnection(t *testing.T) {
	t.Parallel()

	t.Run("propagates the fetch error", func(t *testing.T) {
		stub := &testsCommon.FetcherStub{
			FetchHandler: func(_ context.Context, _ string) ([]byte, error) {
				return nil, expectedErr
			},
		}
		instance, _ := NewMonitorEngine(stub, testEndpoints(), time.Second)

		assert.Equal(t, expectedErr, instance.VerifyConnection(context.Background()))
	})
	t.Run("unexpected content is tolerated", func(t *testing.T) {
		stub := &testsCommon.FetcherStub{
			FetchHandler: func(_ context.Context, _ string) ([]byte, error) {
				return []byte(`<html>some other router</html>`), nil
			},
		}
		instance, _ := NewMonitorEngine(stub, testEndpoints(), time.Second)

		assert.NoError(t, instance.VerifyConnection(context.Background()))
	})
}

func TestMonitorEngine_IsInterfaceNil(t *testing.T) {
	t.Parallel()

	var instance *monitorEngine
	assert.True(t, instance.IsInterfaceNil())

	instance, _ = NewMonitorEngine(&testsCommon.FetcherStub{}, testEndpoints(), time.Second)
	assert.False(t, instance.IsInterfaceNil())
}
