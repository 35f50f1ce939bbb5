package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/rusttype/pkg/terminal"
	"github.com/kr/text"
)

var Help = &Spec{
	Name:  "help",
	Usage: "help [command]",
	Short: "display help for a command",
	Long: `
For help on the top-level command just type "help".
For help on a subcommand, type "help command" where command is the name of
the command.  For help on command nested further, type "help cmd1 cmd2" and
so forth.`,
	HiddenFlags: "v",
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		c := &HelpCommand{}
		f.BoolVar(&c.vflag, "v", false, "show hidden commands and flags")
		return c, nil
	},
}

type HelpCommand struct {
	vflag bool
}

func (c *HelpCommand) Run(args []string) error {
	path, err := parseHelp(Help.Root(), args)
	if err != nil {
		return err
	}
	if names := path.pathname(); len(path) < len(args)+1 {
		return fmt.Errorf("no such command: %s %s", names, strings.Join(args[len(path)-1:], " "))
	}
	displayHelp(os.Stderr, path, c.vflag)
	return nil
}

// flagMap creates a map that maps a name to a boolean based on the existence
// of that name in the comma-separated string of flags.  Whitespace is removed
// from each name in the flags list.
func flagMap(flags string) map[string]bool {
	m := make(map[string]bool)
	for _, flag := range strings.Split(flags, ",") {
		if flag = strings.TrimSpace(flag); flag != "" {
			m[flag] = true
		}
	}
	return m
}

const tab = "    "

func displayHelp(w io.Writer, p path, showHidden bool) {
	spec := p.last().spec
	helpItem(w, "NAME", p.pathname()+" - "+spec.Short)
	helpDesc(w, "USAGE", spec.Usage)
	helpList(w, "OPTIONS", optionSection(p, showHidden))
	if commands := subcommandList(spec, showHidden); len(commands) > 0 {
		helpList(w, "COMMANDS", commands)
	}
	if spec.Long != "" {
		helpDesc(w, "DESCRIPTION", spec.Long)
	}
}

func header(heading string) string {
	if !terminal.IsTerminal(os.Stderr) {
		return heading
	}
	return "\033[1m" + heading + "\033[0m"
}

func helpItem(w io.Writer, heading, body string) {
	fmt.Fprint(w, header(heading)+"\n"+tab+body+"\n\n")
}

func helpDesc(w io.Writer, heading, body string) {
	width := terminal.Width() - len(tab) - 5
	fmt.Fprint(w, header(heading)+"\n"+formatParagraph(body, width))
}

func helpList(w io.Writer, heading string, lines []string) {
	fmt.Fprint(w, header(heading)+"\n"+tab+strings.Join(lines, "\n"+tab)+"\n\n")
}

func formatParagraph(body string, lineWidth int) string {
	var chunks []string
	for _, paragraph := range strings.Split(strings.TrimSpace(body), "\n\n") {
		paragraph = strings.Join(strings.Fields(paragraph), " ")
		wrapped := text.Wrap(paragraph, lineWidth)
		chunks = append(chunks, text.Indent(wrapped, tab))
	}
	return strings.Join(chunks, "\n\n") + "\n\n"
}

// optionSection lists the flags of every command on the path, since
// flags of a parent command may be given before the sub-command.
func optionSection(p path, showHidden bool) []string {
	var body []string
	for k, inst := range p {
		opts := inst.options(showHidden)
		if k < len(p)-1 && len(opts) > 0 {
			body = append(body, fmt.Sprintf("(flags of %q)", inst.spec.Name))
		}
		body = append(body, opts...)
	}
	if len(body) == 0 {
		return []string{"no flags for this command"}
	}
	return body
}

func subcommandList(spec *Spec, showHidden bool) []string {
	var lines []string
	for _, cmd := range spec.children {
		name := cmd.Name
		if cmd.Hidden {
			if !showHidden {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+cmd.Short)
	}
	return lines
}
