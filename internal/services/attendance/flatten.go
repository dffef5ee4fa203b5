package attendance

import (
	"strings"
	"time"

	"github.com/magabrotheeeer/attendance-aggregator/internal/metrics"
	"github.com/magabrotheeeer/attendance-aggregator/internal/models"
	"github.com/magabrotheeeer/attendance-aggregator/internal/odata"
)

const (
	// unknownValue подставляется вместо отсутствующих дат и названий фракций.
	unknownValue = "Unknown"
	// defaultRole подставляется, когда у актора нет функции.
	defaultRole = "Participant"

	dutchDateLayout = "02-01-2006"
	dutchTimeLayout = "15:04"
)

// Форматы даты-времени, в которых API отдаёт Aanvangstijd и Datum.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Flatten превращает вложенные записи активностей в плоский список записей посещаемости:
// по одной записи на каждую пару (активность, актор с персоной).
//
// Активности без акторов полностью пропускаются; их количество возвращается вторым
// значением для диагностики. Акторы без персоны тоже пропускаются, молча.
// Все аномалии данных (отсутствующие даты, имена, фракции) заменяются значениями
// по умолчанию, функция никогда не возвращает ошибку.
func Flatten(activities []odata.Activity) ([]models.AttendanceRecord, int) {
	records := make([]models.AttendanceRecord, 0, len(activities))
	skipped := 0

	for _, act := range activities {
		if len(act.Actors) == 0 {
			skipped++
			continue
		}

		date, clock, raw, validDate := formatActivityDate(act)

		for _, actor := range act.Actors {
			if actor.Persoon == nil {
				continue
			}
			person := actor.Persoon

			record := models.AttendanceRecord{
				ActivityID:       act.ID,
				ActivityTitle:    act.Onderwerp,
				ActivityDate:     date,
				ActivityTime:     clock,
				ActivityDateTime: raw,
				PersonID:         person.ID,
				PersonName:       joinNameParts(deref(person.Voornamen), deref(person.Tussenvoegsel), deref(person.Achternaam)),
				Initials:         deref(person.Initialen),
				FirstName:        deref(person.Voornamen),
				LastName:         joinNameParts(deref(person.Tussenvoegsel), deref(person.Achternaam)),
				Fraction:         unknownValue,
				Role:             defaultRole,
				ActorID:          actor.ID,
				HasValidDate:     validDate,
			}

			if actor.Fractie != nil {
				fractionID := actor.Fractie.ID
				record.FractionID = &fractionID
				if actor.Fractie.NaamNL != nil && *actor.Fractie.NaamNL != "" {
					record.Fraction = *actor.Fractie.NaamNL
				}
			}
			if actor.Functie != nil && *actor.Functie != "" {
				record.Role = *actor.Functie
			}

			records = append(records, record)
		}
	}

	metrics.FlattenedRecords.Add(float64(len(records)))
	metrics.SkippedActivities.Add(float64(skipped))

	return records, skipped
}

// formatActivityDate определяет отображаемые дату и время активности.
// Предпочитается точное поле Aanvangstijd, при его отсутствии берётся Datum.
// Неудача разбора не фатальна: возвращаются "Unknown"/"Unknown" и validDate=false.
func formatActivityDate(act odata.Activity) (date, clock, raw string, validDate bool) {
	value := ""
	if act.Aanvangstijd != nil && *act.Aanvangstijd != "" {
		value = *act.Aanvangstijd
	} else if act.Datum != nil && *act.Datum != "" {
		value = *act.Datum
	}
	if value == "" {
		return unknownValue, unknownValue, "", false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(dutchDateLayout), parsed.Format(dutchTimeLayout), value, true
		}
	}
	return unknownValue, unknownValue, value, false
}

// joinNameParts объединяет непустые части имени через пробел.
func joinNameParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// deref возвращает значение строки по указателю либо пустую строку.
func deref(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}
