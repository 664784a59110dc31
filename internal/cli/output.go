package cli

import (
	"fmt"
	"io"

	"github.com/jgs61/wheelofchumps/internal/domain"
)

// printer выводит сигналы колеса в терминал.
// Имена на колесе печатаются только в подробном режиме.
type printer struct {
	out     io.Writer
	verbose bool
}

func (p *printer) OnPhaseChange(phase domain.Phase) {
	if phase == domain.PhaseAccelerating {
		fmt.Fprintln(p.out, domain.IntroMessage)
	}
	fmt.Fprintf(p.out, "[%s]\n", phase)
}

func (p *printer) OnDisplayName(name string) {
	if p.verbose {
		fmt.Fprintf(p.out, "  %s\n", name)
	}
}

func (p *printer) OnRotationChange(float64) {}

func (p *printer) OnResult(result domain.Result) {
	fmt.Fprintln(p.out, result.Announcement())
}

func (p *printer) OnRejected(error) {}
