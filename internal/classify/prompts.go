package classify

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const sentimentPrompt = `You are an expert sentiment analysis system trained across multiple industries.

Analyze each sentence and classify sentiment into:
- "extreme positive": highly enthusiastic, delighted, grateful
- "positive": satisfied, content, pleased
- "neutral": factual, polite, emotionally flat
- "negative": unsatisfied, concerned, mildly critical
- "extreme negative": angry, highly critical, frustrated

Consider context, tone, and domain-specific language.

Classify based on emotional tone, even if wording is polite. For example,
'I guess it's fine' might still be negative depending on tone. Interpret
sarcasm and indirect emotions.

Return ONLY in this exact JSON format:
{
    "sentiment": "extreme positive|positive|neutral|negative|extreme negative",
    "score": float between 0 and 1,
    "reason": "Detailed explanation of sentiment classification",
    "keywords": ["key", "emotional", "words"],
    "confidence": float between 0 and 1
}`

// Few-shot exemplars keep the model inside the five buckets.
var sentimentFewShot = []chatMessage{
	{Role: "user", Content: "The support was phenomenal! I couldn't be happier."},
	{Role: "assistant", Content: `{"sentiment": "extreme positive", "score": 0.95, "reason": "Very enthusiastic and joyful tone", "keywords": ["phenomenal", "happier"], "confidence": 0.9}`},
	{Role: "user", Content: "It's okay I guess. Nothing special."},
	{Role: "assistant", Content: `{"sentiment": "neutral", "score": 0.5, "reason": "Factual and indifferent tone", "keywords": ["okay"], "confidence": 0.8}`},
	{Role: "user", Content: "Thanks for your help, but I'm still waiting for a resolution."},
	{Role: "assistant", Content: `{"sentiment": "negative", "score": 0.4, "reason": "Underlying dissatisfaction despite politeness", "keywords": ["still waiting"], "confidence": 0.8}`},
	{Role: "user", Content: "This has been a horrible experience. I will never use this service again."},
	{Role: "assistant", Content: `{"sentiment": "extreme negative", "score": 0.9, "reason": "Strong frustration and refusal to return", "keywords": ["horrible", "never"], "confidence": 0.9}`},
	{Role: "user", Content: "Really appreciate the quick fix! Saved my day."},
	{Role: "assistant", Content: `{"sentiment": "positive", "score": 0.8, "reason": "Gratitude and satisfaction with service", "keywords": ["appreciate", "quick"], "confidence": 0.85}`},
}

const intentPrompt = `You are an intelligent intent classification system.

Classify the intent into one or more categories:
- "complaint": expressing dissatisfaction, reporting issues
- "inquiry": asking for information, clarifying something
- "feedback": giving opinions, suggestions, praise, critique
- "request": asking for action, service, or assistance
- "acknowledgment": confirming, agreeing, thanking
- "escalation": demanding supervisor, threatening action

Return ONLY in this JSON format:
{
    "intent": "primary_intent",
    "secondary_intents": ["list", "of", "secondary"],
    "confidence": float between 0 and 1,
    "reasoning": "Explanation of intent classification"
}`

const topicPrompt = `You are an expert topic classifier for customer service conversations.

Analyze the conversation and identify relevant topics from these categories:
- "billing": payment issues, charges, invoices, refunds
- "technical_support": software/hardware problems, troubleshooting, setup
- "product_inquiry": questions about features, specifications, availability
- "account_management": login issues, profile changes, account settings
- "shipping": delivery, tracking, shipping methods, delays
- "returns_exchanges": product returns, exchanges, warranty claims
- "complaint": service issues, dissatisfaction, negative experiences
- "compliment": praise, positive feedback, satisfaction
- "general_inquiry": general questions, information requests
- "cancellation": service termination, subscription cancellation

Return ONLY in this exact JSON format:
{
    "topics": ["list", "of", "relevant", "topics"],
    "primary_topic": "most_relevant_topic",
    "confidence": 0.85,
    "reasoning": "Brief explanation of topic classification"
}`
