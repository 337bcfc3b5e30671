// Package domain contains the core value types of the AI service:
// syllabi, course and program learning outcomes, and the validation
// rules that apply to them before any analysis is scheduled.
package domain
