package scheduler

import "strings"

// ExpandProperties returns a copy of args with every ${name} replaced by the
// named property. References to unknown properties are left as written.
func ExpandProperties(args []string, props map[string]string) []string {
	if len(args) == 0 {
		return args
	}
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = expand(arg, props)
	}
	return out
}

func expand(arg string, props map[string]string) string {
	var sb strings.Builder
	for {
		start := strings.Index(arg, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(arg[start+2:], '}')
		if end < 0 {
			break
		}
		name := arg[start+2 : start+2+end]
		sb.WriteString(arg[:start])
		if v, ok := props[name]; ok {
			sb.WriteString(v)
		} else {
			sb.WriteString(arg[start : start+3+end])
		}
		arg = arg[start+3+end:]
	}
	sb.WriteString(arg)
	return sb.String()
}
