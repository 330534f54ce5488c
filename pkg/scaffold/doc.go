// Package scaffold builds a starter form document by asking questions through
// a PromptDriver. The survey-backed driver prompts on a terminal.
package scaffold
