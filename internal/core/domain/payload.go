package domain

import (
	"encoding/json"
	"fmt"
)

// commandName is the command field the listening service dispatches on.
const commandName = "blocknotify"

// payloadObject mirrors the wire shape of the command for the escaped
// encoding mode. Field order matches the raw format.
type payloadObject struct {
	Command string    `json:"command"`
	Params  [2]string `json:"params"`
}

// EncodePayload renders a notification as the newline-terminated JSON command
// consumed by the listening service:
//
//	{"command":"blocknotify","params":["<coin>","<blockHash>"]}\n
//
// In the default (raw) mode the coin and block hash are substituted verbatim,
// without JSON escaping; the invoking daemon is trusted to supply clean
// values and the receiving service expects this exact byte sequence. With
// escapeParams set, the same object is marshaled through encoding/json so
// the values are escaped properly.
func EncodePayload(n Notification, escapeParams bool) ([]byte, error) {
	if !escapeParams {
		return fmt.Appendf(nil, `{"command":"`+commandName+`","params":["%s","%s"]}`+"\n", n.Coin(), n.BlockHash()), nil
	}

	encoded, err := json.Marshal(payloadObject{
		Command: commandName,
		Params:  [2]string{n.Coin(), n.BlockHash()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return append(encoded, '\n'), nil
}
