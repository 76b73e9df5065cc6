/*
Copyright (C) 2026  Paren Language Contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package netrepl exposes a running *paren.Kernel over a single WebSocket
// connection per client, for a detached process that wants to embed Paren
// the way paren_init/paren_eval_string/paren_import do, just over a socket
// instead of in-process.
package netrepl

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/paren-lang/paren/paren"
)

type request struct {
	Op     string `json:"op"`
	Source string `json:"source,omitempty"`
	Path   string `json:"path,omitempty"`
}

type response struct {
	Value   string   `json:"value,omitempty"`
	Type    string   `json:"type,omitempty"`
	Symbols []string `json:"symbols,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Server upgrades incoming HTTP requests to a WebSocket and serves eval,
// import, and symbols frames against a single shared kernel.
type Server struct {
	Kernel   *paren.Kernel
	upgrader websocket.Upgrader
}

// NewServer wraps an already-initialized kernel. Every connection shares
// the same kernel, matching the global-environment sharing the language
// already requires of concurrently running threads.
func NewServer(k *paren.Kernel) *Server {
	return &Server{Kernel: k, upgrader: websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096}}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		messageType, msg, err := conn.ReadMessage()
		if err != nil {
			if _, ok := err.(*websocket.CloseError); ok {
				return
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		reply := s.handle(msg)
		out, err := json.Marshal(reply)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			return
		}
	}
}

func (s *Server) handle(msg []byte) response {
	var req request
	if err := json.Unmarshal(msg, &req); err != nil {
		return response{Error: fmt.Sprintf("bad request: %v", err)}
	}
	switch req.Op {
	case "eval":
		v := s.Kernel.EvalString(req.Source)
		return response{Value: paren.String(v), Type: paren.TypeName(v)}
	case "import":
		v := s.Kernel.Import(req.Path)
		return response{Value: paren.String(v), Type: paren.TypeName(v)}
	case "symbols":
		return response{Symbols: s.Kernel.GlobalSymbolNames()}
	default:
		return response{Error: "unknown op " + req.Op}
	}
}
