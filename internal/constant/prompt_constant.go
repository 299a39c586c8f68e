package constant

// Prompt templates for the language capability provider. All of them
// are rendered with fmt.Sprintf; the adapter parses the raw answer and
// falls back to keyword logic when parsing fails.

const ScopeValidationPromptTemplate = `You are a scope validator for an airline customer support system.

Determine if the following query is related to airline operations, services, or customer support.

AIRLINE-RELATED topics include:
- Flight bookings, cancellations, modifications
- Flight status, delays, schedules
- Baggage policies, fees, allowances
- Seat selection and availability
- Pet travel and animal policies
- Check-in procedures
- Airport information related to flights
- Ticket pricing and refunds
- Loyalty programs and miles
- Special assistance and accessibility
- In-flight services
- Travel policies and regulations
- General airline customer service

NOT AIRLINE-RELATED topics include:
- General knowledge questions (math, science, history, etc.)
- Programming or technical help
- Personal advice unrelated to travel
- Other industries (hotels, rental cars unless part of airline package)
- Entertainment, recipes, jokes
- Medical advice
- Legal advice
- Any topic completely unrelated to air travel

Customer query: "%s"

Respond with ONLY "YES" if the query is airline-related, or "NO" if it's not.`

const IntentClassificationPromptTemplate = `You are an airline customer support intent classifier.
Here are the possible intents with examples:

1. "Cancel Trip" - Customer wants to cancel their booking
   Examples: "I want to cancel my flight", "Cancel my booking"

2. "Cancellation Policy" - Customer asks about cancellation rules/fees
   Examples: "What is your cancellation policy?", "How much does it cost to cancel?"

3. "Flight Status" - Customer wants to check their flight status
   Examples: "What is my flight status?", "Is my flight on time?"

4. "Seat Availability" - Customer wants to see available seats
   Examples: "Show me available seats", "Seat availability from JFK to LAX"

5. "Pet Travel" - Customer asks about traveling with pets/animals
   Examples: "Can I bring my pet?", "Is it allowed to travel with my dog?", "Pet policy"

6. "Baggage Policy" - Customer asks about luggage/baggage rules
   Examples: "How much baggage can I carry?", "What is the baggage allowance?"

7. "General Inquiry" - Any other customer service question
   Examples: "How do I check in?", "Where is my gate?"

The customer query is:
"%s"

IMPORTANT CLASSIFICATION RULES:
- If the query mentions "pet", "dog", "cat", "animal" -> classify as "Pet Travel"
- If the query mentions "seat", "available seats", "seat map" -> classify as "Seat Availability"
- If the query mentions "baggage", "luggage", "bag", "carry-on", "checked", "overweight", "oversized" -> classify as "Baggage Policy"
- If the query mentions "cancel" with action intent -> classify as "Cancel Trip"
- If the query asks "what is" cancellation policy -> classify as "Cancellation Policy"

Return ONLY the intent name(s), one per line, nothing else.
If no intent matches, return "General Inquiry".`

const InformationExtractionPromptTemplate = `Extract the %s from the following customer query.
If the information is not present, return "NOT_FOUND".

Customer query: "%s"

Return only the extracted value, nothing else.`

const ResponseGenerationPromptTemplate = `You are a helpful airline customer support assistant.

Context: %s
%s

Generate a helpful, concise, and professional response.
Be empathetic and clear in your communication.`

// System instruction handed to the generator for open-ended General
// Inquiry turns.
const GeneralInquiryContext = "You are helping a customer with their airline inquiry. Only answer questions related to airline services, flight operations, travel policies, and customer service. If the question is not related to airlines, politely decline and redirect to airline-related topics."
