package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/wirenet/pkg/engine"
	"github.com/spf13/cobra"
)

var errMenuInputClosed = errors.New("menu input closed")

func runMenu(cmd *cobra.Command, args []string) error {
	e, err := newEngine(args[0])
	if err != nil {
		return err
	}
	return newMenu(e, cmd.InOrStdin(), cmd.OutOrStdout()).run()
}

// menu is the interactive five option loop. It stops on option 5 or when the input ends.
type menu struct {
	engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func newMenu(e *engine.Engine, in io.Reader, out io.Writer) *menu {
	return &menu{
		engine: e,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "|----------------------Menu----------------------|")
	fmt.Fprintf(m.out, "|%-48s|\n", "1. Find Lowest Latency Path")
	fmt.Fprintf(m.out, "|%-48s|\n", "2. Check if Network is Copper-Only Connected")
	fmt.Fprintf(m.out, "|%-48s|\n", "3. Find Lowest Average Latency Spanning Tree")
	fmt.Fprintf(m.out, "|%-48s|\n", "4. Check if Two Vertices Can Be Removed")
	fmt.Fprintf(m.out, "|%-48s|\n", "5. Exit Program")
	fmt.Fprintln(m.out, "|------------------------------------------------|")
	fmt.Fprintln(m.out)
}

// readInt prompts until the user enters an integer.
func (m *menu) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			if err := m.in.Err(); err != nil {
				return 0, err
			}
			return 0, errMenuInputClosed
		}
		fmt.Fprintln(m.out)

		val, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
		if err == nil {
			return val, nil
		}
		fmt.Fprintln(m.out, "Please enter a whole number.")
	}
}

func (m *menu) run() error {
	for {
		m.printMenu()
		option, err := m.readInt("Select Option: ")
		if errors.Is(err, errMenuInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = m.lowestLatencyPath()
		case 2:
			printCopperOnly(m.out, m.engine.CopperOnlyConnected())
		case 3:
			printSpanningForest(m.out, m.engine.LowestAverageLatencySpanningForest())
		case 4:
			printResilience(m.out, m.engine.TwoVertexResilience())
		case 5:
			fmt.Fprintln(m.out, "Thank you for using this application.")
			fmt.Fprintln(m.out, "Exit Program.")
			return nil
		default:
			fmt.Fprintf(m.out, "Unknown option %d.\n", option)
		}

		if errors.Is(err, errMenuInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) lowestLatencyPath() error {
	source, err := m.readInt("Please enter a vertex: ")
	if err != nil {
		return err
	}
	target, err := m.readInt("Please enter another vertex: ")
	if err != nil {
		return err
	}

	result, err := m.engine.LowestLatencyPath(source, target, false)
	if err != nil {
		// out of range vertices are a user mistake, not a reason to leave the menu
		fmt.Fprintln(m.out, err)
		return nil
	}
	printPath(m.out, result)
	return nil
}
