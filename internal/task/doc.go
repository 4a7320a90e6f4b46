// Package task defines the to-do item and the rules that keep it valid.
//
// A Task carries a title, an optional description, a Status, a Difficulty,
// an optional due date and its creation and last-edit timestamps.
//
// # Status Values
//
//	Code  Label       Storage code
//	P     Pendiente   PENDING
//	E     En curso    IN-PROGRESS
//	T     Terminada   FINISHED
//	C     Cancelada   CANCELED
//
// # Difficulty Values
//
//	Code  Label    Stars
//	1     Fácil    ★☆☆
//	2     Medio    ★★☆
//	3     Difícil  ★★★
//
// User input is translated with StatusFromInput and DifficultyFromInput,
// which report whether the text matched. Storage codes are translated with
// StatusFromStorage and DifficultyFromStorage, which never fail and fall back
// to Pending and Easy.
//
// # Updates
//
// Task.Apply applies an Update in which every field is optional. For a
// present field the empty string keeps the current value and a single space
// clears it (description and due date only). An update is validated as a
// whole before any field changes.
package task
