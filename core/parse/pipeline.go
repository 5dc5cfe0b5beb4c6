package parse

import (
	"errors"
	"strings"

	"github.com/brandoncanaday/1730sh/core/job"
)

// ErrSyntax is returned for malformed pipelines. Its text is the exact
// message the REPL prints.
var ErrSyntax = errors.New("Invalid command syntax")

// Build folds a logical line into a Job: stages split on |, pipeline-wide
// redirections collected from their operators, and a trailing & clearing
// the foreground flag. A & anywhere else is an ordinary word.
//
// Redirection operators are accepted in any stage; the launcher applies
// them only at the pipeline's endpoints.
func Build(raw string) (*job.Job, error) {
	raw = strings.Trim(raw, " \t")
	tokens := Tokenize(raw)

	j := &job.Job{Raw: raw, Foreground: true}
	if n := len(tokens); n > 0 && tokens[n-1] == "&" {
		j.Foreground = false
		tokens = tokens[:n-1]
	}
	if len(tokens) == 0 {
		return nil, ErrSyntax
	}

	var cur job.Process
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "|":
			if len(cur.Args) == 0 {
				return nil, ErrSyntax
			}
			cur.HasPipe = true
			j.Procs = append(j.Procs, cur)
			cur = job.Process{}

		case "<", ">", ">>", "e>", "e>>":
			if i+1 >= len(tokens) {
				return nil, ErrSyntax
			}
			operand := tokens[i+1]
			i++
			switch tok {
			case "<":
				if j.Stdin != nil {
					return nil, ErrSyntax
				}
				j.Stdin = &job.Redirect{Path: operand}
			case ">", ">>":
				if j.Stdout != nil {
					return nil, ErrSyntax
				}
				j.Stdout = &job.Redirect{Path: operand, Append: tok == ">>"}
			case "e>", "e>>":
				if j.Stderr != nil {
					return nil, ErrSyntax
				}
				j.Stderr = &job.Redirect{Path: operand, Append: tok == "e>>"}
			}

		default:
			cur.Args = append(cur.Args, tok)
		}
	}

	if len(cur.Args) == 0 {
		return nil, ErrSyntax
	}
	j.Procs = append(j.Procs, cur)

	return j, nil
}
