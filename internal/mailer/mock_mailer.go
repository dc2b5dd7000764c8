package mailer

import "sync"

// SentMessage captures one delivery attempt made through the mock.
type SentMessage struct {
	To       string
	Template string
	Data     any
}

// MockMailer records messages instead of delivering them. Safe for use from
// the handlers' mail goroutines.
type MockMailer struct {
	mu   sync.Mutex
	sent []SentMessage
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, SentMessage{To: recipient, Template: templateFile, Data: data})

	return nil
}

// Sent returns a snapshot of every recorded message in send order.
func (m *MockMailer) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]SentMessage(nil), m.sent...)
}

// SentTo returns the recorded messages addressed to the given recipient.
func (m *MockMailer) SentTo(recipient string) []SentMessage {
	var messages []SentMessage
	for _, msg := range m.Sent() {
		if msg.To == recipient {
			messages = append(messages, msg)
		}
	}

	return messages
}
