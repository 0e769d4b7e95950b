package router

// Outcome is what the guards decided for a route
type Outcome int

const (
	OutcomeRender Outcome = iota
	OutcomeRedirect
)

// Decision is the result of evaluating the guards for a route
type Decision struct {
	Outcome      Outcome
	Target       Route // Redirect target when Outcome is OutcomeRedirect
	ClearSession bool  // Credentials must be cleared before following the decision
}

func redirect(path Path, clear bool) Decision {
	return Decision{
		Outcome:      OutcomeRedirect,
		Target:       Route{Path: path, Params: map[string]string{}},
		ClearSession: clear,
	}
}

// Resolve is the guard transition function (route, session state) -> decision.
// It has no side effects.
func Resolve(route Route, sessionValid bool) Decision {
	switch route.Path.Access() {
	case AccessGuest:
		if sessionValid {
			return redirect(PathFeed, false)
		}
		return Decision{Outcome: OutcomeRender}

	case AccessAuthenticated:
		if !sessionValid {
			return redirect(PathLogin, true)
		}
		if _, missing := route.Missing(); missing {
			return redirect(PathFeed, false)
		}
		return Decision{Outcome: OutcomeRender}

	case AccessUnconditional:
		return redirect(PathLogin, true)

	default:
		if sessionValid {
			return redirect(PathFeed, false)
		}
		return redirect(PathLogin, false)
	}
}
