package scheduling

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testBook(t *testing.T) *Book {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewBook(filepath.Join(t.TempDir(), "book.json"), logger)
}

func TestAddClientAndList(t *testing.T) {
	book := testBook(t)

	if err := book.AddClient("Maria", "9999-1111"); err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}
	if err := book.AddClient("José", "9999-2222"); err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}

	clients, err := book.Clients()
	if err != nil {
		t.Fatalf("Clients failed: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("len(clients) = %d, want 2", len(clients))
	}
	if clients[0].Name != "Maria" || clients[1].Name != "José" {
		t.Errorf("unexpected clients: %+v", clients)
	}
}

func TestAddClientRequiresName(t *testing.T) {
	book := testBook(t)
	if err := book.AddClient("  ", "123"); err == nil {
		t.Error("expected error for blank client name")
	}
}

func TestAddAppointment(t *testing.T) {
	book := testBook(t)
	if err := book.AddClient("Maria", "9999-1111"); err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}

	appt := Appointment{Date: "25/12/2030", Time: "14:00", Barber: "Carlos"}
	// Lookup is case-insensitive.
	if err := book.AddAppointment("mArIa", appt); err != nil {
		t.Fatalf("AddAppointment failed: %v", err)
	}

	clients, err := book.Clients()
	if err != nil {
		t.Fatalf("Clients failed: %v", err)
	}
	if len(clients[0].Appointments) != 1 {
		t.Fatalf("len(appointments) = %d, want 1", len(clients[0].Appointments))
	}
	if clients[0].Appointments[0] != appt {
		t.Errorf("appointment = %+v, want %+v", clients[0].Appointments[0], appt)
	}
}

func TestAddAppointmentUnknownClient(t *testing.T) {
	book := testBook(t)
	err := book.AddAppointment("Nobody", Appointment{Date: "01/01/2030"})
	if !errors.Is(err, ErrClientNotFound) {
		t.Errorf("error = %v, want ErrClientNotFound", err)
	}
}

func TestUpcomingFiltersPastAndBadDates(t *testing.T) {
	book := testBook(t)
	if err := book.AddClient("Maria", "9999-1111"); err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}

	today := time.Now().Format(DateLayout)
	future := time.Now().AddDate(0, 0, 7).Format(DateLayout)

	for _, appt := range []Appointment{
		{Date: "01/01/2000", Time: "10:00", Barber: "Carlos"}, // past
		{Date: today, Time: "11:00", Barber: "Carlos"},
		{Date: future, Time: "12:00", Barber: "Rafael"},
		{Date: "not-a-date", Time: "13:00", Barber: "Carlos"}, // skipped
	} {
		if err := book.AddAppointment("Maria", appt); err != nil {
			t.Fatalf("AddAppointment failed: %v", err)
		}
	}

	upcoming, err := book.Upcoming()
	if err != nil {
		t.Fatalf("Upcoming failed: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("len(upcoming) = %d, want 2", len(upcoming))
	}
	if upcoming[0].Date != today || upcoming[1].Date != future {
		t.Errorf("unexpected upcoming: %+v", upcoming)
	}
	if upcoming[0].Phone != "9999-1111" {
		t.Errorf("Phone = %q, want client phone", upcoming[0].Phone)
	}
}

func TestUpcomingEmptyBook(t *testing.T) {
	book := testBook(t)
	upcoming, err := book.Upcoming()
	if err != nil {
		t.Fatalf("Upcoming failed: %v", err)
	}
	if len(upcoming) != 0 {
		t.Errorf("len(upcoming) = %d, want 0", len(upcoming))
	}
}
