// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const bashCompletion = `_%[1]s_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    if [[ "$cur" == "-"* ]]; then
      opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} ${cur} --generate-bash-completion )
    else
      opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} --generate-bash-completion )
    fi
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}
complete -o bashdefault -o default -o nospace -F _%[1]s_bash_autocomplete %[1]s
`

const zshCompletion = `#compdef %[1]s
_%[1]s_zsh_autocomplete() {
  local -a opts
  local cur
  cur=${words[-1]}
  if [[ "$cur" == "-"* ]]; then
    opts=("${(@f)$(${words[@]:0:#words[@]-1} ${cur} --generate-bash-completion)}")
  else
    opts=("${(@f)$(${words[@]:0:#words[@]-1} --generate-bash-completion)}")
  fi
  if [[ "${opts[1]}" != "" ]]; then
    _describe 'values' opts
  else
    _files
  fi
}
compdef _%[1]s_zsh_autocomplete %[1]s
`

func completionAction(c *cli.Context) error {
	name := c.App.Name
	switch sh := c.String("shell"); sh {
	case "bash":
		fmt.Fprintf(c.App.Writer, bashCompletion, name)
	case "zsh":
		fmt.Fprintf(c.App.Writer, zshCompletion, name)
	case "fish":
		s, err := c.App.ToFishCompletion()
		if err != nil {
			return err
		}
		fmt.Fprint(c.App.Writer, s)
	default:
		return fmt.Errorf("unsupported shell: %q", sh)
	}
	return nil
}
