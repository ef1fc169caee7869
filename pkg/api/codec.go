package api

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// JSONCodec marshals messages with encoding/json under the "json" codec
// name, replacing Connect's protobuf-only default.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (JSONCodec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }

// CBORCodec marshals messages as deterministic CBOR under the "cbor" codec
// name. Struct fields use their json tags as CBOR map keys.
type CBORCodec struct{}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	encOptions := cbor.CoreDetEncOptions()
	// Keep sub-second precision on timestamps; the summary tie-break depends on it.
	encOptions.Time = cbor.TimeRFC3339Nano
	var err error
	cborEnc, err = encOptions.EncMode()
	if err != nil {
		panic("api: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("api: CBOR decoder initialization failed: " + err.Error())
	}
}

func (CBORCodec) Name() string { return "cbor" }

func (CBORCodec) Marshal(msg any) ([]byte, error) { return cborEnc.Marshal(msg) }

func (CBORCodec) Unmarshal(data []byte, msg any) error { return cborDec.Unmarshal(data, msg) }
