// Package store keeps the session's tasks and persists them to a JSON file.
//
// The task file is a JSON array with one object per task:
//
//	[
//	  {
//	    "titulo": "Pasear al perro",
//	    "descripcion": "Ejercitar 30 minutos",
//	    "estado": "IN-PROGRESS",
//	    "creacion": "2025-11-20T12:00:00.000Z",
//	    "ultimaEdicion": "2025-11-21T08:30:00.000Z",
//	    "vencimiento": "2025-12-01T21:00:00.000Z",
//	    "dificultad": 2
//	  }
//	]
//
// # Loading
//
// A missing file is not an error: an empty store is seeded with three demo
// tasks. A file that is not a JSON array fails with *CorruptDataError and
// leaves the store untouched. Elements that fail task validation are
// skipped and counted in LoadResult.
//
// # Saving
//
// Save writes the whole store with 2-space indentation and a trailing
// newline. The file is written to a temporary sibling and renamed into
// place. Failures are returned as *WriteError; the in-memory store is not
// affected.
package store
