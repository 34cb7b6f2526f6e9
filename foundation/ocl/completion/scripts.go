// File: scripts.go
// Title: Shell Scripts
// Description: Renders command paths as bash and fish completion scripts.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package completion

import (
	"sort"
	"strings"
	"text/template"
)

// commandMaps indexes command paths by the word they follow
type commandMaps struct {
	global      map[string]bool
	options     map[string]map[string]bool
	subcommands map[string]map[string]bool
}

func add(m map[string]map[string]bool, key, value string) {
	if m[key] == nil {
		m[key] = map[string]bool{}
	}
	m[key][value] = true
}

func buildMaps(name string, commands [][]string, defaults []string) commandMaps {
	maps := commandMaps{
		global:      map[string]bool{},
		options:     map[string]map[string]bool{},
		subcommands: map[string]map[string]bool{},
	}
	for _, d := range defaults {
		maps.global[d] = true
	}
	for _, command := range commands {
		switch n := len(command); {
		case n == 1:
			if isOption(command[0]) {
				maps.global[command[0]] = true
			} else {
				add(maps.subcommands, name, command[0])
			}
		case n > 1:
			parent := command[n-2]
			arg := formatForCommand(command[n-1])
			target := maps.subcommands
			if isOption(arg) {
				target = maps.options
			}
			add(target, parent, arg)
			add(target, strings.ReplaceAll(parent, "_", "-"), arg)
		}
	}
	return maps
}

// wordsFor returns the sorted defaults, options and subcommands after command
func (m commandMaps) wordsFor(command string, defaults []string) []string {
	set := map[string]bool{}
	for _, d := range defaults {
		set[d] = true
	}
	for w := range m.options[command] {
		set[w] = true
	}
	for w := range m.subcommands[command] {
		set[w] = true
	}
	return sortedKeys(set)
}

// commandNames returns name and every word that is followed by something
func (m commandMaps) commandNames(name string) []string {
	set := map[string]bool{name: true}
	for k := range m.options {
		set[k] = true
	}
	for k := range m.subcommands {
		set[k] = true
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var bashTemplate = template.Must(template.New("bash").Parse(`# bash completion support for {{.Name}}
# DO NOT EDIT.
# This script is generated by zunder.

_complete-{{.Identifier}}()
{
  local cur prev opts lastcommand
  COMPREPLY=()
  prev="${COMP_WORDS[COMP_CWORD-1]}"
  cur="${COMP_WORDS[COMP_CWORD]}"
  lastcommand=$(get_lastcommand)

  opts="{{.Defaults}}"
  GLOBAL_OPTIONS="{{.Global}}"

  case "${lastcommand}" in
{{- range .Cases}}

    {{.Command}})
{{- if .Main}}
      opts="{{.Words}} ${GLOBAL_OPTIONS}"
{{- else}}
      if is_prev_global; then
        opts="${GLOBAL_OPTIONS}"
      else
        opts="{{.Words}} ${GLOBAL_OPTIONS}"
      fi
{{- end}}
      opts=$(filter_options $opts)
    ;;
{{- end}}
  esac

  COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
  return 0
}

get_lastcommand()
{
  local lastcommand i

  lastcommand=
  for ((i=0; i < ${#COMP_WORDS[@]}; ++i)); do
    if [[ ${COMP_WORDS[i]} != -* ]] && [[ -n ${COMP_WORDS[i]} ]] && [[
      ${COMP_WORDS[i]} != $cur ]]; then
      lastcommand=${COMP_WORDS[i]}
    fi
  done

  echo $lastcommand
}

filter_options()
{
  local opts
  opts=""
  for opt in "$@"
  do
    if ! option_already_entered $opt; then
      opts="$opts $opt"
    fi
  done

  echo $opts
}

option_already_entered()
{
  local opt
  for opt in ${COMP_WORDS[@]:0:COMP_CWORD}
  do
    if [ $1 == $opt ]; then
      return 0
    fi
  done
  return 1
}

is_prev_global()
{
  for opt in $GLOBAL_OPTIONS
  do
    if [ $opt == $prev ]; then
      return 0
    fi
  done
  return 1
}

complete -F _complete-{{.Identifier}} {{.Name}}
`))

type bashCase struct {
	Command string
	Words   string
	Main    bool
}

// BashScript renders a bash completion script for the command paths
func BashScript(name string, commands [][]string, defaults []string) string {
	maps := buildMaps(name, commands, defaults)

	var cases []bashCase
	for _, command := range maps.commandNames(name) {
		cases = append(cases, bashCase{
			Command: command,
			Words:   strings.Join(maps.wordsFor(command, defaults), " "),
			Main:    command == name,
		})
	}

	var sb strings.Builder
	_ = bashTemplate.Execute(&sb, map[string]any{
		"Name":       name,
		"Identifier": identifier(name),
		"Defaults":   strings.Join(defaults, " "),
		"Global":     strings.Join(sortedKeys(maps.global), " "),
		"Cases":      cases,
	})
	return sb.String()
}

// identifier strips characters that are not allowed in a function name
func identifier(name string) string {
	return strings.NewReplacer("/", "", ".", "", ",", "").Replace(name)
}

const fishPrelude = `function __fish_using_command
    set cmd (commandline -opc)
    for i in (seq (count $cmd) 1)
        switch $cmd[$i]
        case "-*"
        case "*"
            if [ $cmd[$i] = $argv[1] ]
                return 0
            else
                return 1
            end
        end
    end
    return 1
end

function __option_entered_check
    set cmd (commandline -opc)
    for i in (seq (count $cmd))
        switch $cmd[$i]
        case "-*"
            if [ $cmd[$i] = $argv[1] ]
                return 1
            end
        end
    end
    return 0
end

function __is_prev_global
    set cmd (commandline -opc)
    set global_options GLOBAL_OPTIONS
    set prev (count $cmd)

    for opt in $global_options
        if [ "--$opt" = $cmd[$prev] ]
            echo $prev
            return 0
        end
    end
    return 1
end

`

// FishScript renders a fish completion script for the command paths
func FishScript(name string, commands [][]string, defaults []string) string {
	maps := buildMaps(name, commands, defaults)
	global := sortedKeys(maps.global)

	quoted := make([]string, len(global))
	for i, g := range global {
		quoted[i] = `"` + strings.TrimLeft(g, "-") + `"`
	}

	var sb strings.Builder
	sb.WriteString(strings.Replace(fishPrelude, "GLOBAL_OPTIONS", strings.Join(quoted, " "), 1))

	for _, command := range maps.commandNames(name) {
		for _, sub := range sortedKeys(maps.subcommands[command]) {
			sb.WriteString("complete -c " + name + " -n '__fish_using_command " + command + "' -f -a " + sub + "\n")
		}
		options := map[string]bool{}
		for o := range maps.options[command] {
			options[o] = true
		}
		for o := range maps.global {
			options[o] = true
		}
		check := ""
		if command != name {
			check = " and __is_prev_global;"
		}
		for _, o := range sortedKeys(options) {
			option := strings.TrimLeft(o, "-")
			sb.WriteString("complete -c " + name + " -n '__fish_using_command " + command + ";" + check +
				" and __option_entered_check --" + option + "' -l " + option + "\n")
		}
	}
	return sb.String()
}
