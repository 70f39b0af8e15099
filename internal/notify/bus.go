package notify

import (
	"encoding/json"
	log "log/slog"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

// BusSink forwards display requests as JSON over a websocket to an external
// overlay UI, which owns window creation and lifetime. The daemon side never
// touches UI-thread state.
type BusSink struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

type busMessage struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	AutoDismiss int    `json:"auto_dismiss"`
	Interrupt   bool   `json:"interrupt,omitempty"`
}

func NewBusSink(wsURL string) (*BusSink, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}

	log.Info("Connected to display bus", "url", wsURL)
	return &BusSink{conn: conn}, nil
}

func (b *BusSink) Display(req DisplayRequest) error {
	kind := "response"
	if req.IsError {
		kind = "error"
	}

	data, err := json.Marshal(busMessage{
		ID:          req.ID,
		Kind:        kind,
		Title:       req.Title,
		Text:        req.Text,
		Category:    req.Category.String(),
		Icon:        req.Icon(),
		AutoDismiss: req.AutoDismiss,
		Interrupt:   req.Interrupt,
	})
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn.WriteMessage(websocket.TextMessage, data)
}

func (b *BusSink) Close() error {
	return b.conn.Close()
}
