package api

import (
    "encoding/json"
    "net/http"
    "strings"

    "github.com/google/uuid"

    "github.com/example/quran-mood-agent/internal/agent"
    "github.com/example/quran-mood-agent/internal/textutil"
)

// JSON-RPC 2.0 flavored envelope for the message/send endpoint.

type rpcRequest struct {
    Jsonrpc string          `json:"jsonrpc"`
    Method  string          `json:"method"`
    ID      json.RawMessage `json:"id"`
    Params  rpcParams       `json:"params"`
}

type rpcParams struct {
    Message rpcMessage `json:"message"`
}

type rpcMessage struct {
    Role  string    `json:"role"`
    Parts []rpcPart `json:"parts"`
}

type rpcPart struct {
    Type string `json:"type"`
    Text string `json:"text"`
}

type rpcResult struct {
    Role      string    `json:"role"`
    Parts     []rpcPart `json:"parts"`
    Kind      string    `json:"kind"`
    MessageID string    `json:"message_id"`
}

type rpcError struct {
    Code    int            `json:"code"`
    Message string         `json:"message"`
    Data    map[string]any `json:"data,omitempty"`
}

type rpcResponse struct {
    Jsonrpc string          `json:"jsonrpc"`
    ID      json.RawMessage `json:"id"`
    Result  *rpcResult      `json:"result,omitempty"`
    Error   *rpcError       `json:"error,omitempty"`
}

func rpcOK(id json.RawMessage, text string) rpcResponse {
    return rpcResponse{
        Jsonrpc: "2.0",
        ID:      id,
        Result: &rpcResult{
            Role:      "agent",
            Parts:     []rpcPart{{Type: "text", Text: text}},
            Kind:      "message",
            MessageID: uuid.NewString(),
        },
    }
}

func rpcFail(id json.RawMessage, code int, message string) rpcResponse {
    return rpcResponse{Jsonrpc: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}

// handleRPC serves POST / in the JSON-RPC flavored wire shape. Only the
// message/send method is routed; protocol violations answer with rpc error
// objects instead of bare HTTP errors.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
    defer func() {
        if rec := recover(); rec != nil {
            s.Log.Errorw("unhandled panic on rpc endpoint", "panic", rec)
            respondJSON(w, http.StatusInternalServerError, rpcFail(nil, http.StatusInternalServerError, internalErrorReply))
        }
    }()

    var req rpcRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        s.Log.Warnw("undecodable rpc payload", "err", err)
        respondJSON(w, http.StatusInternalServerError, rpcFail(nil, http.StatusInternalServerError, internalErrorReply))
        return
    }
    s.Log.Debugw("raw rpc payload", "method", req.Method, "id", string(req.ID))

    if req.Jsonrpc != "2.0" {
        respondJSON(w, http.StatusBadRequest, rpcFail(req.ID, -32600, "Invalid JSON-RPC version. Must be '2.0'."))
        return
    }
    if req.Method != "message/send" {
        respondJSON(w, http.StatusMethodNotAllowed, rpcFail(req.ID, -32601, "Method not found"))
        return
    }

    // Take the first text part
    userMessage := ""
    for _, p := range req.Params.Message.Parts {
        if p.Type == "text" && p.Text != "" {
            userMessage = textutil.Clean(p.Text)
            break
        }
    }
    if strings.TrimSpace(userMessage) == "" {
        respondJSON(w, http.StatusBadRequest, rpcFail(req.ID, http.StatusBadRequest, agent.EmptyMessageReply))
        return
    }

    reply := s.Agent.Respond(r.Context(), userMessage)
    respondJSON(w, http.StatusOK, rpcOK(req.ID, reply.Text))
}
