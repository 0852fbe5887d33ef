// Package scheduling manages the client and appointment book. Unlike the
// finance store it is backed by a flat JSON file and scanned linearly, which
// is adequate for a single shop's client list.
package scheduling

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DateLayout is the appointment date format (day/month/year).
const DateLayout = "02/01/2006"

// ErrClientNotFound is returned when an appointment references an unknown client.
var ErrClientNotFound = errors.New("client not found")

// Appointment is one booked slot for a client.
type Appointment struct {
	Date   string `json:"date"` // DD/MM/YYYY
	Time   string `json:"time"`
	Barber string `json:"barber"`
}

// Client is a client record with their booked appointments.
type Client struct {
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Appointments []Appointment `json:"appointments"`
}

// UpcomingAppointment is a flattened appointment row for listing.
type UpcomingAppointment struct {
	Client string `json:"client"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Barber string `json:"barber"`
}

// Book is the file-backed appointment book. It is the only stateful component
// in the system, so access is serialized with a mutex.
type Book struct {
	path   string
	mu     sync.Mutex
	logger *logrus.Logger
}

// NewBook creates a book persisted at the given path
func NewBook(path string, logger *logrus.Logger) *Book {
	if logger == nil {
		logger = logrus.New()
	}
	return &Book{path: path, logger: logger}
}

// AddClient appends a client record and saves the book
func (b *Book) AddClient(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("client name is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	clients, err := b.load()
	if err != nil {
		return err
	}

	clients = append(clients, Client{Name: name, Phone: phone, Appointments: []Appointment{}})
	return b.save(clients)
}

// Clients returns all client records
func (b *Book) Clients() ([]Client, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

// AddAppointment books a slot for the named client. The lookup is
// case-insensitive; an unknown client is ErrClientNotFound.
func (b *Book) AddAppointment(clientName string, appt Appointment) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	clients, err := b.load()
	if err != nil {
		return err
	}

	found := false
	for i := range clients {
		if strings.EqualFold(clients[i].Name, clientName) {
			clients[i].Appointments = append(clients[i].Appointments, appt)
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrClientNotFound, clientName)
	}

	return b.save(clients)
}

// Upcoming lists all appointments from today onward. Appointments whose date
// does not parse are skipped, not treated as errors.
func (b *Book) Upcoming() ([]UpcomingAppointment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	clients, err := b.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	upcoming := []UpcomingAppointment{}
	for _, client := range clients {
		for _, appt := range client.Appointments {
			date, err := time.ParseInLocation(DateLayout, appt.Date, now.Location())
			if err != nil {
				b.logger.WithFields(logrus.Fields{
					"client": client.Name,
					"date":   appt.Date,
				}).Warn("Skipping appointment with unparseable date")
				continue
			}
			if !date.Before(today) {
				upcoming = append(upcoming, UpcomingAppointment{
					Client: client.Name,
					Phone:  client.Phone,
					Date:   appt.Date,
					Time:   appt.Time,
					Barber: appt.Barber,
				})
			}
		}
	}

	return upcoming, nil
}

// load reads the book file; a missing file is an empty book.
func (b *Book) load() ([]Client, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Client{}, nil
		}
		return nil, fmt.Errorf("failed to read appointment book: %w", err)
	}

	var clients []Client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, fmt.Errorf("failed to parse appointment book: %w", err)
	}
	return clients, nil
}

func (b *Book) save(clients []Client) error {
	data, err := json.MarshalIndent(clients, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode appointment book: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("failed to create book directory: %w", err)
	}

	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write appointment book: %w", err)
	}
	return nil
}
