// Package form holds the state of one visitor's registration form.
//
// A Holder stores the field values and the submission status, normalizes the
// phone number as it is typed, and runs the submit sequence:
//
//	Idle -> Submitting -> Succeeded -> (after the reset delay) Idle
//	                   \-> Failed -> (next edit) Idle
//
// While a submission is in flight further submits are rejected, which is the
// only protection against double posts. After a success the holder schedules
// a reset that clears every field; Close cancels it.
package form
