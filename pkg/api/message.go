package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Типы исходящих сообщений (поле "t")
const (
	MessageTypeEvent = "e" // событие, привязанное к handler ID
	MessageTypeLog   = "l" // лог-сообщение клиента для сервера
)

// UploadSeparator отделяет JSON заголовок от содержимого файла в бинарном сообщении
var UploadSeparator = []byte("\n\n")

// FileInfo описывает один выбранный пользователем файл
type FileInfo struct {
	Name  string `json:"name"`  // имя файла
	Type  string `json:"type"`  // MIME тип
	Size  int64  `json:"size"`  // размер в байтах
	Index int    `json:"index"` // позиция файла в выборке, с нуля
	Total int    `json:"total"` // сколько файлов выбрано всего
}

// Message is one outbound message to the server.
// Event messages carry the handler ID, log messages carry the text in Data["m"].
type Message struct {
	Data       map[string]string `json:"d,omitempty"`
	Extra      map[string]string `json:"e,omitempty"`
	File       *FileInfo         `json:"file,omitempty"`
	Type       string            `json:"t"`
	HandlerID  string            `json:"i,omitempty"`
	ValueMulti []string          `json:"vm,omitempty"`
	// Body is the raw file content for uploads; a non-nil Body turns the message into a binary frame
	Body     []byte `json:"-"`
	Selected bool   `json:"s,omitempty"`
}

// NewEvent создает сообщение о событии для указанного handler ID
func NewEvent(handlerID string) Message {
	return Message{
		Type:      MessageTypeEvent,
		HandlerID: handlerID,
	}
}

// NewLog создает лог-сообщение
func NewLog(text string) Message {
	return Message{
		Type: MessageTypeLog,
		Data: map[string]string{"m": text},
	}
}

// SetData sets one key of the data map, allocating it when needed
func (m *Message) SetData(key, value string) {
	if m.Data == nil {
		m.Data = make(map[string]string)
	}
	m.Data[key] = value
}

// IsBinary reports whether the message must be sent as a binary frame
func (m Message) IsBinary() bool {
	return m.Body != nil
}

// Clone returns a copy that shares no maps or slices with m
func (m Message) Clone() Message {
	c := m
	if m.Data != nil {
		c.Data = make(map[string]string, len(m.Data))
		for k, v := range m.Data {
			c.Data[k] = v
		}
	}
	if m.Extra != nil {
		c.Extra = make(map[string]string, len(m.Extra))
		for k, v := range m.Extra {
			c.Extra[k] = v
		}
	}
	if m.File != nil {
		f := *m.File
		c.File = &f
	}
	if m.ValueMulti != nil {
		c.ValueMulti = append([]string(nil), m.ValueMulti...)
	}
	return c
}

// Encode serializes the message into a frame payload.
// Binary messages are the JSON header, UploadSeparator and then the file bytes.
func (m Message) Encode() ([]byte, error) {
	header, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	if !m.IsBinary() {
		return header, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(header) + len(UploadSeparator) + len(m.Body))
	buf.Write(header)
	buf.Write(UploadSeparator)
	buf.Write(m.Body)

	return buf.Bytes(), nil
}
