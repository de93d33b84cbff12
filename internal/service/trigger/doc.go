// Package trigger defines the shared command logic for emergency-tap and
// emergency-cancel.
//
// The command connects to the activation server, sends one trigger event, and
// retries transient delivery failures. A transition rejection from the
// controller ends the retry loop: the answer is final.
package trigger
