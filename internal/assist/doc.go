package assist

// Package assist implements the AI-assisted search path. It wraps an OpenAI
// chat completion client in a multi-turn session that always requests a
// JSON-object response and decodes it strictly into video metadata. One
// round trip per call, no retries.
