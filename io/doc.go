// Package io provides the console of the TOY machine, mapped at memory
// address FF, and a Tape which connects the console to byte streams.
//
// Console words are 16 bits. Input is queued from free text: runs of hex
// digits are cut into groups of four, and anything else separates runs.
package io
