// Package models содержит доменные структуры сервиса посещаемости:
// плоскую запись посещаемости, параметры фильтрации и метаданные ответов.
package models

import "time"

// AttendanceRecord представляет собой одну плоскую запись посещаемости:
// пара (активность, актор с привязанной персоной). Формируется заново на каждый
// запрос, нигде не сохраняется и отдаётся фронтенду в JSON как есть.
type AttendanceRecord struct {
	ActivityID       string  `json:"activityId"`                 // Идентификатор активности
	ActivityTitle    string  `json:"activityTitle"`              // Тема/название активности
	ActivityDate     string  `json:"activityDate"`               // Дата в нидерландском формате (дд-мм-гггг) либо "Unknown"
	ActivityTime     string  `json:"activityTime"`               // Время в 24-часовом формате либо "Unknown"
	ActivityDateTime string  `json:"activityDateTime,omitempty"` // Исходное значение даты-времени из API
	PersonID         string  `json:"personId"`                   // Идентификатор персоны
	PersonName       string  `json:"personName"`                 // Полное имя: имя + приставка + фамилия
	Initials         string  `json:"initials,omitempty"`         // Инициалы
	FirstName        string  `json:"firstName,omitempty"`        // Имя (имена)
	LastName         string  `json:"lastName,omitempty"`         // Приставка + фамилия, для сортировки
	Fraction         string  `json:"fraction"`                   // Название фракции либо "Unknown"
	FractionID       *string `json:"fractionId"`                 // Идентификатор фракции (nil, если фракции нет)
	Role             string  `json:"role"`                       // Функция актора либо "Participant"
	ActorID          string  `json:"actorId"`                    // Идентификатор записи актора
	HasValidDate     bool    `json:"hasValidDate"`               // Удалось ли распарсить дату активности
}

// Filter представляет логические параметры фильтрации активностей.
// Отсутствующее поле (nil) означает отсутствие ограничения по этому измерению.
type Filter struct {
	DateFrom     *time.Time // Начало периода, включительно
	DateTo       *time.Time // Конец периода, включительно
	ActivityType *string    // Подстрока для поиска по теме активности (без учёта регистра)
}

// ListMetadata метаданные ответа списка посещаемости.
type ListMetadata struct {
	TotalActivities    int  `json:"totalActivities"`    // Количество активностей в ответе API
	TotalRegistrations int  `json:"totalRegistrations"` // Количество плоских записей после обработки
	TotalCount         *int `json:"totalCount"`         // Общее количество активностей (nil, если счётчик не запрашивался или не удался)
	Skip               int  `json:"skip"`
	Limit              int  `json:"limit"`
}

// Stats приблизительная статистика по выборке активностей.
// Считается по ограниченной выборке, а не по всем данным.
type Stats struct {
	TotalActivities         int    `json:"totalActivities"`
	SampleRegistrations     int    `json:"sampleRegistrations"`
	UniquePeopleInSample    int    `json:"uniquePeopleInSample"`
	UniqueFractionsInSample int    `json:"uniqueFractionsInSample"`
	Note                    string `json:"note"`
}
