// Package odata реализует работу с вышестоящим OData v4 API Tweede Kamer:
// типы записей, построение строки запроса и HTTP-клиент.
package odata

import "encoding/json"

// Envelope стандартный конверт ответа OData с типизированными активностями.
type Envelope struct {
	Context string     `json:"@odata.context,omitempty"`
	Count   *int       `json:"@odata.count,omitempty"`
	Value   []Activity `json:"value"`
}

// RawEnvelope конверт ответа OData с сырыми записями без разбора,
// используется для отдачи вложенной структуры как есть.
type RawEnvelope struct {
	Context string            `json:"@odata.context,omitempty"`
	Count   *int              `json:"@odata.count,omitempty"`
	Value   []json.RawMessage `json:"value"`
}

// Activity запись активности парламента (заседание, дебаты и т.п.).
// Опциональные поля API приходят как null и представлены указателями.
type Activity struct {
	ID           string  `json:"Id"`
	Onderwerp    string  `json:"Onderwerp"`    // Тема активности
	Aanvangstijd *string `json:"Aanvangstijd"` // Точное время начала (предпочтительное поле)
	Datum        *string `json:"Datum"`        // Дата без времени (резервное поле)
	Verwijderd   bool    `json:"Verwijderd"`   // Флаг удаления; такие записи отфильтровываются ещё в запросе
	Actors       []Actor `json:"ActiviteitActor"`
}

// Actor связь персоны (и опционально фракции) с активностью.
type Actor struct {
	ID      string   `json:"Id"`
	Functie *string  `json:"Functie"` // Функция/роль актора в активности
	Relatie *string  `json:"Relatie"` // Тип связи, например "Deelnemer"
	Persoon *Persoon `json:"Persoon"`
	Fractie *Fractie `json:"Fractie"`
}

// Persoon член парламента.
type Persoon struct {
	ID            string  `json:"Id"`
	Voornamen     *string `json:"Voornamen"`     // Имя (имена)
	Tussenvoegsel *string `json:"Tussenvoegsel"` // Приставка фамилии, например "van der"
	Achternaam    *string `json:"Achternaam"`    // Фамилия
	Initialen     *string `json:"Initialen"`     // Инициалы
}

// Fractie парламентская фракция.
type Fractie struct {
	ID     string  `json:"Id"`
	NaamNL *string `json:"NaamNL"` // Локализованное название фракции
}
