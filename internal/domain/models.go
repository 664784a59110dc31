package domain

import (
	"fmt"
	"time"
)

const (
	// MaxParticipants ограничивает размер списка участников.
	MaxParticipants = 50
	// MaxNameLength ограничивает длину сырой строки с именами (до разбиения).
	MaxNameLength = 500
	// MaxTaskLength ограничивает длину описания задачи.
	MaxTaskLength = 200
)

// IntroMessage показывается в момент запуска колеса.
const IntroMessage = "Round and round it goes, where the wheel of chumps stops, nobody knows!"

// Phase отражает стадию вращения колеса.
type Phase string

const (
	PhaseIdle         Phase = "IDLE"
	PhaseAccelerating Phase = "ACCELERATING"
	PhaseCruising     Phase = "CRUISING"
	PhaseDecelerating Phase = "DECELERATING"
	PhaseSettling     Phase = "SETTLING"
	PhaseDone         Phase = "DONE"
)

func (p Phase) String() string {
	return string(p)
}

// IsSpinning сообщает, что колесо находится в одной из активных фаз.
func (p Phase) IsSpinning() bool {
	switch p {
	case PhaseAccelerating, PhaseCruising, PhaseDecelerating, PhaseSettling:
		return true
	default:
		return false
	}
}

// SpinRequest хранит проверенную пару (участники, задача).
// Создаётся только валидатором, после создания не меняется.
type SpinRequest struct {
	participants []string
	task         string
}

// NewSpinRequest копирует список участников, чтобы запрос оставался неизменяемым.
func NewSpinRequest(participants []string, task string) SpinRequest {
	return SpinRequest{
		participants: append([]string(nil), participants...),
		task:         task,
	}
}

// Participants возвращает копию списка участников.
func (r SpinRequest) Participants() []string {
	return append([]string(nil), r.participants...)
}

// Len возвращает количество участников.
func (r SpinRequest) Len() int {
	return len(r.participants)
}

// Participant возвращает участника по индексу.
func (r SpinRequest) Participant(i int) string {
	return r.participants[i]
}

// Task возвращает описание задачи.
func (r SpinRequest) Task() string {
	return r.task
}

// Result описывает итог завершённого вращения.
type Result struct {
	SpinID     string    `json:"spin_id"`
	ChosenName string    `json:"chosen_name"`
	Task       string    `json:"task"`
	DecidedAt  time.Time `json:"decided_at"`
}

// Announcement формирует сообщение о выбранном участнике.
func (r Result) Announcement() string {
	return fmt.Sprintf("Ohhh noes! It looks like %s is the chump that has to %s!", r.ChosenName, r.Task)
}
