// Package memory provides persistence backends for facts the agent decides
// to remember across turns and conversations. Stores index items by kind and
// free text and serve keyword searches newest-first, so recent context wins
// when the engine assembles its memory preamble.
package memory
