package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubetools/fmctrainer"
)

var practiceStage string

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Interactive stage practice mode",
	Long: `Start an interactive TUI for practicing a stage. Each round shows a
random-state scramble; type your solution and compare it against the
optimal found in the background.

Keyboard shortcuts:
  Enter   - Check the typed solution
  Tab     - Reveal the optimal solution
  n       - Next scramble
  q/Esc   - Quit`,
	RunE: runPractice,
}

func init() {
	rootCmd.AddCommand(practiceCmd)
	practiceCmd.Flags().StringVar(&practiceStage, "stage", "eo", "Stage to practice (eo, dr, htr, fr, slice, finish)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	scrambleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	caseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	goodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type scrambleMsg struct {
	scramble string
	setup    fmctrainer.Solution
	state    fmctrainer.CubeState
	err      error
}
type optimalMsg struct {
	round    int
	solution fmctrainer.Solution
	err      error
}

// Model
type practiceModel struct {
	solver *fmctrainer.Solver
	stage  fmctrainer.Stage

	// Round state
	round    int
	scramble string
	setup    fmctrainer.Solution
	state    fmctrainer.CubeState
	caseName string
	optimal  *fmctrainer.Solution

	// Attempt
	input    string
	verdict  string
	solved   int
	attempts int

	loading  bool
	err      error
	quitting bool
}

func newPracticeModel(solver *fmctrainer.Solver, stage fmctrainer.Stage) *practiceModel {
	return &practiceModel{solver: solver, stage: stage, loading: true}
}

func (m *practiceModel) Init() tea.Cmd {
	return m.nextScramble()
}

func (m *practiceModel) nextScramble() tea.Cmd {
	return func() tea.Msg {
		scramble, err := m.solver.Scramble(context.Background())
		if err != nil {
			return scrambleMsg{err: err}
		}
		state, err := fmctrainer.StateFromScramble(scramble)
		if err != nil {
			return scrambleMsg{err: err}
		}
		// A raw scramble only qualifies for EO; solve the earlier stages
		// first so the round starts from a searchable position.
		setup, err := m.solver.SetupFor(context.Background(), state, m.stage)
		if err != nil {
			return scrambleMsg{err: err}
		}
		return scrambleMsg{
			scramble: scramble,
			setup:    setup,
			state:    state.ApplyMoves(setup.Moves),
		}
	}
}

// solveOptimal finds the optimal solution in the background. The round
// number guards against a stale result landing after 'n'.
func (m *practiceModel) solveOptimal(round int, state fmctrainer.CubeState) tea.Cmd {
	return func() tea.Msg {
		sol, err := m.solver.SolveStage(context.Background(), state, m.stage)
		return optimalMsg{round: round, solution: sol, err: err}
	}
}

func (m *practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "n":
			m.loading = true
			m.verdict = ""
			m.input = ""
			m.optimal = nil
			return m, m.nextScramble()

		case "tab":
			if m.optimal != nil {
				if m.optimal.Len() == 0 {
					m.verdict = "Optimal: already solved"
				} else {
					m.verdict = fmt.Sprintf("Optimal: %s  (%d moves)", m.optimal, m.optimal.Len())
				}
			} else {
				m.verdict = "Still searching..."
			}

		case "enter":
			m.checkAttempt()

		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}

	case scrambleMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.round++
		m.scramble = msg.scramble
		m.setup = msg.setup
		m.state = msg.state
		m.caseName = m.solver.CaseName(m.state, m.stage)
		m.loading = false
		return m, m.solveOptimal(m.round, m.state)

	case optimalMsg:
		if msg.round != m.round {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		sol := msg.solution
		m.optimal = &sol
	}

	return m, nil
}

func (m *practiceModel) checkAttempt() {
	moves, err := fmctrainer.ParseMoves(m.input)
	if err != nil {
		m.verdict = badStyle.Render("Invalid notation")
		return
	}

	m.attempts++
	after := m.state.ApplyMoves(moves)
	if !m.stage.IsGoal(after) {
		m.verdict = badStyle.Render(fmt.Sprintf("Not %s yet", m.stage.DisplayName()))
		return
	}

	m.solved++
	if m.optimal != nil {
		diff := len(moves) - m.optimal.Len()
		if diff <= 0 {
			m.verdict = goodStyle.Render(fmt.Sprintf("Optimal! (%d moves)", len(moves)))
		} else {
			m.verdict = goodStyle.Render(fmt.Sprintf("Solved in %d moves", len(moves))) +
				caseStyle.Render(fmt.Sprintf("  (+%d over optimal)", diff))
		}
	} else {
		m.verdict = goodStyle.Render(fmt.Sprintf("Solved in %d moves", len(moves)))
	}
}

func (m *practiceModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Solved %d of %d attempts. Goodbye!\n", m.solved, m.attempts)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("FMC Practice - %s", m.stage.DisplayName())))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Generating scramble...\n")
		return b.String()
	}

	b.WriteString("Scramble: ")
	b.WriteString(scrambleStyle.Render(m.scramble))
	b.WriteString("\n")
	if m.setup.Len() > 0 {
		b.WriteString("Setup:    ")
		b.WriteString(scrambleStyle.Render(m.setup.String()))
		b.WriteString("\n")
	}
	b.WriteString(caseStyle.Render(fmt.Sprintf("Case: %s", m.caseName)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Your solution: %s_\n", m.input))

	if m.verdict != "" {
		b.WriteString("\n")
		b.WriteString(m.verdict)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(badStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter=check  Tab=reveal optimal  n=next  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPractice(cmd *cobra.Command, args []string) error {
	stage, err := fmctrainer.ParseStage(practiceStage)
	if err != nil {
		return fmt.Errorf("unknown stage '%s'\nUse one of: eo, dr, htr, fr, slice, finish", practiceStage)
	}

	solver, err := newSolver()
	if err != nil {
		return err
	}

	// Warm the tables before entering the TUI so the first round is
	// snappy. Setup needs the earlier stages' tables too.
	fmt.Println("Preparing tables...")
	if _, err := solver.SetupFor(cmd.Context(), fmctrainer.SolvedState(), stage); err != nil {
		return err
	}
	if _, err := solver.SolveStage(cmd.Context(), fmctrainer.SolvedState(), stage); err != nil {
		return err
	}

	model := newPracticeModel(solver, stage)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
