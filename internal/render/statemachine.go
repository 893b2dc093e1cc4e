package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/model"
)

// StateMachineOptions tunes the state-machine view.
type StateMachineOptions struct {
	Style Style
	// Conventions decides which events are entry events, drawn inside their state.
	Conventions config.Conventions
	// ShowErrorTransitions adds a dashed edge to each event's error state.
	ShowErrorTransitions bool
}

// WriteStateMachine renders the state machine: one node per state carrying
// its entry actions, and one edge per other event labeled with the event name
// and its numbered actions.
func WriteStateMachine(w io.Writer, sm *model.StateMachine, opts StateMachineOptions) error {
	d := newDotWriter(w, opts.Style)
	d.line("digraph G {")
	d.line("rankdir=TD")
	d.line("nodesep=2.5")

	for _, st := range sm.States {
		d.printf("%s [style=%s, fillcolor=%s, color=%s,label=%s]\n",
			quote(st.Name), d.style.NodeStyle, d.style.FillColor, d.style.StateColor, d.stateLabel(st, opts.Conventions))
	}

	for _, st := range sm.States {
		for _, ev := range st.Events {
			if opts.Conventions.IsEntryEvent(ev.Name) {
				continue
			}
			d.printf("%s->%s [label= %s]\n", quote(st.Name), quote(ev.NextState), d.eventLabel(ev.Name, ev.Actions))
			if opts.ShowErrorTransitions && ev.NextStateError != "" {
				d.printf("%s->%s [style=dashed, label= %s]\n", quote(st.Name), quote(ev.NextStateError), d.eventLabel(ev.Name+" (error)", nil))
			}
		}
	}
	d.line("}")
	return d.err
}

func (d *dotWriter) stateLabel(st *model.SMState, conv config.Conventions) string {
	fs := d.style.FontSize
	var b strings.Builder
	fmt.Fprintf(&b, `<<TABLE border="0" cellborder="0"><TR><TD width="60" height="60"><font point-size="%d">%s</font></TD></TR>`, fs, escapeHTML(st.Name))
	for _, ev := range st.Events {
		if !conv.IsEntryEvent(ev.Name) || len(ev.Actions) == 0 {
			continue
		}
		fmt.Fprintf(&b, `<TR><TD><font point-size="%d"> / %s </font></TD></TR>`, fs, escapeHTML(ev.Name))
		fmt.Fprintf(&b, `<TR><TD><font point-size="%d">`, fs)
		for i, action := range ev.Actions {
			fmt.Fprintf(&b, "%d. %s <BR/>", i+1, escapeHTML(action))
		}
		b.WriteString("</font></TD></TR>")
		break
	}
	b.WriteString("</TABLE>>")
	return b.String()
}

// eventLabel lays the event name out next to its numbered actions; an event
// without actions shows only its name.
func (d *dotWriter) eventLabel(name string, actions []string) string {
	fs := d.style.FontSize
	var b strings.Builder
	b.WriteString(`<<TABLE border="0" cellborder="0">`)
	if len(actions) == 0 {
		fmt.Fprintf(&b, `<TR><TD><font point-size="%d">%s</font></TD></TR>`, fs, escapeHTML(name))
	} else {
		n := len(actions)
		fmt.Fprintf(&b, `<TR><TD ROWSPAN="%d"><font point-size="%d">%s</font></TD>`, n, fs, escapeHTML(name))
		fmt.Fprintf(&b, `<TD ALIGN="CENTER" ROWSPAN="%d"><font point-size="%d"> / </font></TD>`, n, fs)
		fmt.Fprintf(&b, `<TD ALIGN="LEFT"><font point-size="%d">1. %s </font></TD></TR>`, fs, escapeHTML(actions[0]))
		for i := 1; i < n; i++ {
			fmt.Fprintf(&b, `<TR><TD ALIGN="LEFT"><font point-size="%d">%d. %s </font></TD></TR>`, fs, i+1, escapeHTML(actions[i]))
		}
	}
	b.WriteString("</TABLE>>")
	return b.String()
}
