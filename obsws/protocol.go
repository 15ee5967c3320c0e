package obsws

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
)

// obs-websocket protocol v5 framing. Every frame is a JSON envelope with
// an op code and an op specific payload.
// https://github.com/obsproject/obs-websocket/blob/master/docs/generated/protocol.md

const rpcVersion = 1

const (
	opHello           = 0
	opIdentify        = 1
	opIdentified      = 2
	opEvent           = 5
	opRequest         = 6
	opRequestResponse = 7
)

type envelope struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
}

type helloData struct {
	ObsWebSocketVersion string         `json:"obsWebSocketVersion"`
	RPCVersion          int            `json:"rpcVersion"`
	Authentication      *authChallenge `json:"authentication"`
}

type authChallenge struct {
	Challenge string `json:"challenge"`
	Salt      string `json:"salt"`
}

type identifyData struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication,omitempty"`
	EventSubscriptions int    `json:"eventSubscriptions"`
}

type requestData struct {
	RequestType string      `json:"requestType"`
	RequestID   string      `json:"requestId"`
	RequestData interface{} `json:"requestData,omitempty"`
}

type responseData struct {
	RequestType   string `json:"requestType"`
	RequestID     string `json:"requestId"`
	RequestStatus struct {
		Result  bool   `json:"result"`
		Code    int    `json:"code"`
		Comment string `json:"comment"`
	} `json:"requestStatus"`
	ResponseData json.RawMessage `json:"responseData"`
}

// authResponse computes the Identify authentication string for a
// password protected server: base64(sha256(base64(sha256(password +
// salt)) + challenge)).
func authResponse(password string, c *authChallenge) string {
	secret := sha256.Sum256([]byte(password + c.Salt))
	b64 := base64.StdEncoding.EncodeToString(secret[:])
	proof := sha256.Sum256([]byte(b64 + c.Challenge))
	return base64.StdEncoding.EncodeToString(proof[:])
}
