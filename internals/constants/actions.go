// file: internals/constants/actions.go
package constants

import "strings"

// ResolveAction is the decision on a pending request or a file under review.
type ResolveAction string

const (
	ActionApprove ResolveAction = "approve"
	ActionReject  ResolveAction = "reject"
)

// ParseResolveAction decodes the raw action once at the boundary. Anything
// other than approve/reject is invalid input.
func ParseResolveAction(s string) (ResolveAction, bool) {
	switch ResolveAction(strings.ToLower(strings.TrimSpace(s))) {
	case ActionApprove:
		return ActionApprove, true
	case ActionReject:
		return ActionReject, true
	}
	return "", false
}
