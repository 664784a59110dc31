package spin

import "github.com/jgs61/wheelofchumps/internal/domain"

// Observer получает сигналы колеса для слоя отображения.
// Методы вызываются под блокировкой движка, поэтому синхронно обращаться
// к Engine из них нельзя.
type Observer interface {
	OnPhaseChange(phase domain.Phase)
	OnDisplayName(name string)
	OnRotationChange(angle float64)
	OnResult(result domain.Result)
	OnRejected(err error)
}

// ObserverFuncs позволяет подписаться только на нужные сигналы.
type ObserverFuncs struct {
	PhaseChange    func(phase domain.Phase)
	DisplayName    func(name string)
	RotationChange func(angle float64)
	Result         func(result domain.Result)
	Rejected       func(err error)
}

func (o ObserverFuncs) OnPhaseChange(phase domain.Phase) {
	if o.PhaseChange != nil {
		o.PhaseChange(phase)
	}
}

func (o ObserverFuncs) OnDisplayName(name string) {
	if o.DisplayName != nil {
		o.DisplayName(name)
	}
}

func (o ObserverFuncs) OnRotationChange(angle float64) {
	if o.RotationChange != nil {
		o.RotationChange(angle)
	}
}

func (o ObserverFuncs) OnResult(result domain.Result) {
	if o.Result != nil {
		o.Result(result)
	}
}

func (o ObserverFuncs) OnRejected(err error) {
	if o.Rejected != nil {
		o.Rejected(err)
	}
}

// Multi рассылает каждый сигнал всем наблюдателям по порядку.
func Multi(observers ...Observer) Observer {
	list := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) OnPhaseChange(phase domain.Phase) {
	for _, o := range m {
		o.OnPhaseChange(phase)
	}
}

func (m multiObserver) OnDisplayName(name string) {
	for _, o := range m {
		o.OnDisplayName(name)
	}
}

func (m multiObserver) OnRotationChange(angle float64) {
	for _, o := range m {
		o.OnRotationChange(angle)
	}
}

func (m multiObserver) OnResult(result domain.Result) {
	for _, o := range m {
		o.OnResult(result)
	}
}

func (m multiObserver) OnRejected(err error) {
	for _, o := range m {
		o.OnRejected(err)
	}
}
