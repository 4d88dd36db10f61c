package ui

// copiedFrames is how long "Copied!" feedback stays up, ~2 seconds at 60fps.
const copiedFrames = 120

// copyText puts text on the system clipboard. Tests replace it.
var copyText = writeClipboard
