package nakama

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"trumpduel/internal/app"
)

var errUnknownOpCode = errors.New("unknown op code")

var commandByOpCode = map[int64]app.CommandKind{
	OpStartRound:          app.CommandStartRound,
	OpCoinCall:            app.CommandCoinCall,
	OpSetTrump:            app.CommandSetTrump,
	OpPlayCard:            app.CommandPlayCard,
	OpRequestComputerMove: app.CommandRequestComputerMove,
	OpSetDifficulty:       app.CommandSetDifficulty,
	OpRestart:             app.CommandRestart,
}

// ErrorMessage is the body of an OpError message.
type ErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	OpCode  int64  `json:"op_code,omitempty"`
}

// toStruct converts any JSON-encodable value into a protobuf Struct.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("payload to struct: %w", err)
	}
	return out, nil
}

// encodeMessage renders v as a binary protobuf Struct.
func encodeMessage(v any) ([]byte, error) {
	s, err := toStruct(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

// decodeMessage parses a server payload back into a Struct.
func decodeMessage(data []byte) (*structpb.Struct, error) {
	out := &structpb.Struct{}
	if err := proto.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeCommand builds an engine command from a client message. The body is
// optional JSON; the op code decides the command kind.
func decodeCommand(opCode int64, data []byte) (app.Command, error) {
	kind, ok := commandByOpCode[opCode]
	if !ok {
		return app.Command{}, fmt.Errorf("%w: %d", errUnknownOpCode, opCode)
	}
	var cmd app.Command
	if len(data) > 0 {
		if err := json.Unmarshal(data, &cmd); err != nil {
			return app.Command{}, fmt.Errorf("decode %s: %w", kind, err)
		}
	}
	cmd.Kind = kind
	return cmd, nil
}

// encodeLabel renders the match label as JSON through protojson.
func encodeLabel(v any) (string, error) {
	s, err := toStruct(v)
	if err != nil {
		return "", err
	}
	b, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
