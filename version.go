package main

// / The version number of the current exprtree release.
const kExprtreeVersion = "1.0.0"
