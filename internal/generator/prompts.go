package generator

import (
	"fmt"
	"strings"
)

const defaultLevelPrompt = `You are an expert at creating terrifying and surreal "backrooms" levels.

Given a user's prompt (object, phrase, or vibe), create a detailed backrooms level with the following structure:

1. Level Name & Number: Creative name with a level number (e.g., "Level 173: The Breathing Hall")
2. Visual Environment Description: Detailed description of what the space looks like (2-3 sentences)
3. Hazards & Threats: List of 3-4 specific dangers or entities (as array)
4. Lore: One paragraph about the origin, rumors, or discovery of this level
5. Story Hook: A creepy entry log, survivor tape quote, or cryptic message that draws readers in

Make it genuinely unsettling but not gratuitously gory. Focus on psychological horror, liminal spaces, and the uncanny.

IMPORTANT: Return ONLY valid JSON without any markdown formatting, code blocks, or additional text. Do not wrap your response in backticks or code formatting.

Return in this exact format:
{
  "levelNumber": number,
  "name": "Level X: The [Name]",
  "visualDescription": "description here",
  "hazards": ["hazard1", "hazard2", "hazard3"],
  "lore": "lore paragraph here",
  "storyHook": "story hook here"
}`

const defaultImageStyle = `Style: atmospheric horror, dim lighting, uncanny valley, liminal space aesthetic, photorealistic but unsettling. No people visible. Focus on the architectural and environmental details.`

// userMessage wraps the caller's prompt for the chat request
func userMessage(prompt string) string {
	return "Create a backrooms level based on: " + prompt
}

// imagePrompt embeds a visual description into the fixed image template
func imagePrompt(description, style string) string {
	description = strings.TrimRight(strings.TrimSpace(description), ".")
	return fmt.Sprintf("A haunting, liminal space: %s. %s", description, style)
}
