// Package workflow holds the vocabulary shared by every governed entity:
// entity kinds, actions, actors and the transitions and events the engine emits.
package workflow
