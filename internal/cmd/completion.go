package cmd

import (
	"fmt"
)

// CompletionCmd generates shell completions.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completions"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completions"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completions"`
}

type CompletionBashCmd struct{}

func (c *CompletionBashCmd) Run() error {
	script := `_termtable_completions() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local prev="${COMP_WORDS[COMP_CWORD-1]}"
    local commands="render presets colors config version completion"

    case "$prev" in
        --preset|-p|presets)
            COMPREPLY=($(compgen -W "ascii default double markdown rounded" -- "$cur"))
            return
            ;;
        --format|-f)
            COMPREPLY=($(compgen -W "json5 csv tsv" -- "$cur"))
            return
            ;;
        --color)
            COMPREPLY=($(compgen -W "auto always never" -- "$cur"))
            return
            ;;
    esac

    if [ $COMP_CWORD -eq 1 ]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
    fi
}

complete -o default -F _termtable_completions termtable
`
	fmt.Fprint(stdout, script)
	return nil
}

type CompletionZshCmd struct{}

func (c *CompletionZshCmd) Run() error {
	script := `#compdef termtable

_termtable() {
    local -a commands
    commands=(
        'render:Render a table from a file or stdin'
        'presets:Show the border presets'
        'colors:Inspect color tokens'
        'config:Manage configuration'
        'version:Print version'
        'completion:Generate shell completions'
    )

    _arguments \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            _files
            ;;
    esac
}

compdef _termtable termtable
`
	fmt.Fprint(stdout, script)
	return nil
}

type CompletionFishCmd struct{}

func (c *CompletionFishCmd) Run() error {
	script := `complete -c termtable -f

complete -c termtable -n '__fish_use_subcommand' -a 'render' -d 'Render a table from a file or stdin'
complete -c termtable -n '__fish_use_subcommand' -a 'presets' -d 'Show the border presets'
complete -c termtable -n '__fish_use_subcommand' -a 'colors' -d 'Inspect color tokens'
complete -c termtable -n '__fish_use_subcommand' -a 'config' -d 'Manage configuration'
complete -c termtable -n '__fish_use_subcommand' -a 'version' -d 'Print version'
complete -c termtable -n '__fish_use_subcommand' -a 'completion' -d 'Generate shell completions'
complete -c termtable -n '__fish_seen_subcommand_from render' -F
complete -c termtable -n '__fish_seen_subcommand_from render' -l preset -xa 'ascii default double markdown rounded'
complete -c termtable -n '__fish_seen_subcommand_from render' -l format -xa 'json5 csv tsv'
`
	fmt.Fprint(stdout, script)
	return nil
}
