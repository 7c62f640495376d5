// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields (for example CreateFn) that a test sets
// to control behavior, plus default return values used when the function
// field is nil. Calls are recorded so tests can assert on the arguments.
//
// Usage:
//
//	tokens := &mocks.MockTokenService{
//	    GenerateTokenFn: func(ctx context.Context, id auth.Identity) (string, error) {
//	        return "mocked-token", nil
//	    },
//	}
package mocks
