package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fpawel/ethprop/internal/thermo"
	"github.com/gorilla/websocket"
	"github.com/powerman/structlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, sink func(thermo.Result) error) (*websocket.Conn, func()) {
	s := NewServer(structlog.New(structlog.KeyUnit, "test"), thermo.NewEthane(), sink)
	srv := httptest.NewServer(s.Handler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn, func() {
		_ = conn.Close()
		srv.Close()
	}
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg interface{}) Msg {
	require.NoError(t, conn.WriteJSON(msg))
	var reply Msg
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestCalc(t *testing.T) {
	var (
		mu     sync.Mutex
		stored []thermo.Result
	)
	conn, done := dial(t, func(r thermo.Result) error {
		mu.Lock()
		defer mu.Unlock()
		stored = append(stored, r)
		return nil
	})
	defer done()

	reply := roundTrip(t, conn, map[string]interface{}{
		"type":    "calc",
		"content": map[string]interface{}{"t": 350, "p": 2, "unit": "bar"},
	})
	require.Equal(t, TypeResult, reply.Type, string(reply.Content))

	var r thermo.Result
	require.NoError(t, json.Unmarshal(reply.Content, &r))
	assert.InEpsilon(t, 2736.467475182493, r.H, 1e-9)
	assert.InEpsilon(t, 2.862083834055899, r.S, 1e-9)
	assert.Equal(t, thermo.Bar, r.Unit)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, stored, 1)
	assert.Equal(t, r, stored[0])
}

func TestCalcError(t *testing.T) {
	conn, done := dial(t, nil)
	defer done()

	reply := roundTrip(t, conn, map[string]interface{}{
		"type":    "calc",
		"content": map[string]interface{}{"t": 350, "p": -5, "unit": "bar"},
	})
	require.Equal(t, TypeError, reply.Type)
	var e ErrorContent
	require.NoError(t, json.Unmarshal(reply.Content, &e))
	assert.Equal(t, "InvalidMagnitude", e.Kind)
	assert.Equal(t, -5.0, e.Value)

	reply = roundTrip(t, conn, map[string]interface{}{
		"type":    "calc",
		"content": map[string]interface{}{"t": 350, "p": 1, "unit": "mmHg"},
	})
	require.NoError(t, json.Unmarshal(reply.Content, &e))
	assert.Equal(t, "InvalidUnit", e.Kind)
	assert.Equal(t, "mmHg", e.Value)
}

func TestRef(t *testing.T) {
	conn, done := dial(t, nil)
	defer done()

	reply := roundTrip(t, conn, Msg{Type: TypeRef})
	require.Equal(t, TypeRef, reply.Type)
	var ref Reference
	require.NoError(t, json.Unmarshal(reply.Content, &ref))
	sub := thermo.Ethane()
	assert.Equal(t, Reference{
		Name: "ethane", MolarMass: 30.069, T0: 300, P0: 101.3, Tc: 305.3, Pc: 4900, Omega: 0.1,
		CpA: sub.A, CpB: sub.B, CpC: sub.C,
	}, ref)
	assert.InEpsilon(t, 1.131*thermo.R, ref.CpA, 1e-12)
	assert.InEpsilon(t, 19.225e-3*thermo.R, ref.CpB, 1e-12)
	assert.InEpsilon(t, -5.561e-6*thermo.R, ref.CpC, 1e-12)
}

func TestCalcUnitAnyCase(t *testing.T) {
	conn, done := dial(t, nil)
	defer done()

	for _, unit := range []string{"BAR", "Bar", " bar "} {
		reply := roundTrip(t, conn, map[string]interface{}{
			"type":    "calc",
			"content": map[string]interface{}{"t": 350, "p": 2, "unit": unit},
		})
		require.Equal(t, TypeResult, reply.Type, string(reply.Content))
		var r thermo.Result
		require.NoError(t, json.Unmarshal(reply.Content, &r))
		assert.Equal(t, thermo.Bar, r.Unit, unit)
		assert.Equal(t, 200.0, r.PressureKPa, unit)
	}
}

func TestBadMessages(t *testing.T) {
	conn, done := dial(t, nil)
	defer done()

	var e ErrorContent

	reply := roundTrip(t, conn, Msg{Type: "start"})
	require.Equal(t, TypeError, reply.Type)
	require.NoError(t, json.Unmarshal(reply.Content, &e))
	assert.Equal(t, KindUnknownType, e.Kind)

	reply = roundTrip(t, conn, Msg{Type: TypeCalc})
	require.NoError(t, json.Unmarshal(reply.Content, &e))
	assert.Equal(t, KindBadRequest, e.Kind)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, conn.ReadJSON(&reply))
	require.NoError(t, json.Unmarshal(reply.Content, &e))
	assert.Equal(t, KindBadRequest, e.Kind)

	// still serving
	reply = roundTrip(t, conn, Msg{Type: TypeRef})
	assert.Equal(t, TypeRef, reply.Type)
}
