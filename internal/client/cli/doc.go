// Package cli is the terminal front end of the gophfood client.
//
// It wires configuration, local storage, the backend gateway and the
// controller, then runs a REPL whose commands map one to one onto controller
// actions. After each command the current screen is rendered from the
// controller's observable state; order updates from the polling loop are
// printed as they arrive.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Leaving the REPL pauses the controller so the next start resumes on the
// same screen.
package cli
