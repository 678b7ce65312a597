package storage

// ExerciseStore exposes the shared backend checks to the external test package.
var ExerciseStore = exerciseStore
