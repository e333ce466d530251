// Package errors provides the structured error type used across rpg-sheet.
//
// Errors carry a Code, a user-facing Message, an optional Cause and
// free-form Meta. Wrap keeps the code of the error it wraps, so a NotFound
// raised by a repository is still a NotFound after the orchestrator adds
// context:
//
//	out, err := repo.Get(ctx, character.GetInput{ID: id})
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load character")
//	}
//
// Rule violations a player can trigger (raising a score past its ceiling,
// choosing a milestone as a non-mixed archetype) are not errors. The engine
// reports them as verdicts and leaves the decision to the caller. This
// package is for caller bugs and infrastructure failures: unknown ability
// names, malformed dice notation, missing characters, store outages.
//
// Config validation uses ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level", ch.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Handlers convert to gRPC with ToGRPCError; clients convert back with
// FromGRPCError.
package errors
