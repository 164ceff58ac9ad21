package main

// @generated from session_test.go

//go:generate go run scripts/gen_session_expects.go -- session_test.go expects_test.go

func withSessionOptions(opts ...SessionOption) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withOptions(opts...)
	}
}

func withSessionInput(lines ...string) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withInput(lines...)
	}
}

func withSessionNotation(n Notation) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withNotation(n)
	}
}

func withSessionBase(b Base) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withBase(b)
	}
}

func withSessionSettings(settings Settings) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withSettings(settings)
	}
}

func withSessionAnswer(ans int32) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withAnswer(ans)
	}
}

func withSessionLimit(limit int) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withLimit(limit)
	}
}

func withSessionInteractive(is bool) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.withInteractive(is)
	}
}

func expectSessionOutput(output string) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.expectOutput(output)
	}
}

func expectSessionErrors(errors string) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.expectErrors(errors)
	}
}

func expectSessionAnswer(ans int32) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.expectAnswer(ans)
	}
}

func expectSessionExitCode(code int) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.expectExitCode(code)
	}
}
