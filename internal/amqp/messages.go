package amqp

import (
	"encoding/json"
	"time"
)

// ExportMessage asks the worker to export one recorded transaction to the
// sheets ledger. It carries only the ID; the worker loads the full row from
// the database so the queue never holds stale copies.
type ExportMessage struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExportMessage(id int64) *ExportMessage {
	return &ExportMessage{
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *ExportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ExportMessageFromJSON(data []byte) (*ExportMessage, error) {
	var msg ExportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
