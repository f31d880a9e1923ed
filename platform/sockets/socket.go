package socket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Raul1156/monopoly/platform/queries"
	jwt "github.com/form3tech-oss/jwt-go"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

var errUnauthenticated = errors.New("user not authenticated")

// request is the JSON body every client event carries.
type request struct {
	Token     string `json:"token"`
	Game_id   string `json:"game_id"`
	Player_id string `json:"player_id"`
	Piece     string `json:"piece"`
}

// Server relays game events to socket.io rooms, one room per game, and
// accepts turn actions from clients.
type Server struct {
	io     *socketio.Server
	secret []byte
	log    logrus.FieldLogger
}

func NewServer(secret []byte, log logrus.FieldLogger) (*Server, error) {
	io, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}
	return &Server{io: io, secret: secret, log: log}, nil
}

// Broadcast sends an event to everyone in the game's room. Payloads go out
// as JSON strings.
func (s *Server) Broadcast(gameID, event string, payload interface{}) {
	if payload == nil {
		s.io.BroadcastToRoom("/", gameID, event)
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.WithError(err).WithField("event", event).Error("failed encoding event")
		return
	}
	s.io.BroadcastToRoom("/", gameID, event, string(data))
}

// userFromToken returns the user id of a token signed by Login.
func userFromToken(raw string, secret []byte) (string, error) {
	if raw == "" {
		return "", errUnauthenticated
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errUnauthenticated
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", errUnauthenticated
	}
	return id, nil
}

func (s *Server) parse(jsonStr string) (request, string, error) {
	var req request
	if err := json.Unmarshal([]byte(jsonStr), &req); err != nil {
		return req, "", fmt.Errorf("bad message: %w", err)
	}
	if req.Game_id == "" {
		return req, "", errors.New("game_id not passed")
	}
	userID, err := userFromToken(req.Token, s.secret)
	return req, userID, err
}

// handle wraps a turn action: it parses the message, runs fn and reports
// failures back to the sender only.
func (s *Server) handle(event string, fn func(ctx context.Context, c socketio.Conn, req request, userID string) (interface{}, error)) {
	s.io.OnEvent("/", event, func(c socketio.Conn, jsonStr string) {
		req, userID, err := s.parse(jsonStr)
		if err == nil {
			var res interface{}
			res, err = fn(context.Background(), c, req, userID)
			if err == nil && res != nil {
				if data, mErr := json.Marshal(res); mErr == nil {
					c.Emit(event+"-result", string(data))
				}
			}
		}
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"event": event, "conn": c.ID()}).Debug("socket action failed")
			c.Emit("error-message", err.Error())
		}
	})
}

// Register hooks the client events up to svc.
func (s *Server) Register(svc *queries.Service) {
	s.io.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		return nil
	})

	s.handle("join-game", func(ctx context.Context, c socketio.Conn, req request, userID string) (interface{}, error) {
		st, err := svc.GetGame(ctx, req.Game_id)
		if err != nil {
			return nil, err
		}
		member := false
		for _, p := range st.Players {
			if p.User_id == userID {
				member = true
			}
		}
		if !member {
			if st, err = svc.JoinGame(ctx, req.Game_id, userID, req.Piece); err != nil {
				return nil, err
			}
		}
		c.Join(req.Game_id)
		c.Emit("joined-game", strconv.Itoa(s.io.RoomLen("/", req.Game_id)))
		return st.Dto(), nil
	})

	s.handle("start-game", func(ctx context.Context, _ socketio.Conn, req request, userID string) (interface{}, error) {
		_, err := svc.StartGame(ctx, req.Game_id, userID)
		return nil, err
	})

	s.handle("roll-dice", func(ctx context.Context, _ socketio.Conn, req request, userID string) (interface{}, error) {
		return svc.MovePlayer(ctx, req.Game_id, req.Player_id, userID, nil)
	})

	s.handle("request-buy", func(ctx context.Context, _ socketio.Conn, req request, userID string) (interface{}, error) {
		return svc.BuyCurrent(ctx, req.Game_id, req.Player_id, userID)
	})

	s.handle("pay-out-jail", func(ctx context.Context, _ socketio.Conn, req request, userID string) (interface{}, error) {
		return svc.PayOutOfJail(ctx, req.Game_id, req.Player_id, userID)
	})

	s.handle("end-turn", func(ctx context.Context, _ socketio.Conn, req request, userID string) (interface{}, error) {
		_, err := svc.EndTurn(ctx, req.Game_id, req.Player_id, userID)
		return nil, err
	})

	s.io.OnEvent("/", "leave-game", func(c socketio.Conn, gameID string) {
		c.Leave(gameID)
		s.io.BroadcastToRoom("/", gameID, "player-left")
	})

	s.io.OnError("/", func(c socketio.Conn, e error) {
		s.log.WithError(e).Warn("socket error")
	})

	s.io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		for _, room := range c.Rooms() {
			s.io.BroadcastToRoom("/", room, "player-left")
		}
		c.LeaveAll()
	})
}

// Listen serves socket.io on addr until the server is closed.
func (s *Server) Listen(addr string, allowOrigin string) error {
	go func() {
		if err := s.io.Serve(); err != nil {
			s.log.WithError(err).Error("socket.io stopped")
		}
	}()
	defer s.io.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{allowOrigin},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	s.log.WithField("addr", addr).Info("socket.io listening")
	return http.ListenAndServe(addr, c.Handler(mux))
}
