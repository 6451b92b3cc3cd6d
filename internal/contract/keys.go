package contract

import (
	"strconv"
	"time"

	"github.com/pkordes/hostel-desk/internal/board"
	"github.com/pkordes/hostel-desk/internal/domain"
)

// Placeholder keys understood by the stay contract template.
const (
	KeyReservationID = "{{reserva_id}}"
	KeyYear          = "{{ano}}"
	KeyGuestName     = "{{nome}}"
	KeyGuestDocument = "{{documento}}"
	KeyRoom          = "{{quarto}}"
	KeyBed           = "{{cama}}"
	KeyCheckIn       = "{{data_entrada}}"
	KeyCheckOut      = "{{data_saida}}"
	KeyToday         = "{{data_hoje}}"
)

// StayPlaceholders builds the placeholder map for a stay's rental contract.
// The contract year is the check-in year, or today's year when the stay has
// no recorded check-in.
func StayPlaceholders(stay domain.StayDetail, today time.Time) domain.Placeholders {
	year := today.Year()
	if stay.CheckIn != nil {
		year = stay.CheckIn.Year()
	}

	return domain.Placeholders{
		{Key: KeyReservationID, Value: strconv.FormatInt(stay.ID, 10)},
		{Key: KeyYear, Value: strconv.Itoa(year)},
		{Key: KeyGuestName, Value: stay.GuestName},
		{Key: KeyGuestDocument, Value: stay.GuestDocument},
		{Key: KeyRoom, Value: strconv.Itoa(stay.RoomNumber)},
		{Key: KeyBed, Value: stay.BedLabel},
		{Key: KeyCheckIn, Value: board.FormatDate(stay.CheckIn)},
		{Key: KeyCheckOut, Value: board.FormatDate(stay.Departure)},
		{Key: KeyToday, Value: today.Format(domain.DisplayDateLayout)},
	}
}
