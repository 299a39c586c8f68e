package constant

// Hard-coded policy fallbacks used when no document of the matching
// type exists in the policy store.

const DefaultCancellationPolicyText = `Our Cancellation Policy:

- Cancellations made 7+ days before departure: 10% cancellation fee
- Cancellations made 3-7 days before departure: 25% cancellation fee
- Cancellations made 1-3 days before departure: 50% cancellation fee
- Cancellations made less than 24 hours before departure: 75% cancellation fee

Refunds are processed within 7 business days.

Would you like to proceed with cancelling your flight?`

const DefaultPetTravelPolicyText = `Pet Travel Policy:

We welcome small cats and dogs in the cabin on most flights!

In-Cabin Pet Travel:
- Pets must be at least 4 months old
- Maximum weight: 20 lbs (pet + carrier)
- Carrier dimensions: 17"L x 12.5"W x 8.5"H
- Fee: $125 each way

Requirements:
- Pet must remain in carrier under the seat
- Valid health certificate required
- Advance booking required (limited spots)

For more information, visit: https://www.jetblue.com/traveling-together/traveling-with-pets`

const DefaultBaggagePolicyText = `Baggage Allowance Policy:

Checked Baggage:
- Economy Class: 2 bags, up to 50 lbs (23 kg) each
- Business Class: 3 bags, up to 70 lbs (32 kg) each
- First Class: 4 bags, up to 70 lbs (32 kg) each

Carry-On Baggage:
- 1 carry-on bag: Maximum 22" x 14" x 9" (56 x 36 x 23 cm)
- 1 personal item: Purse, laptop bag, or briefcase

Oversized/Overweight Fees:
- 51-70 lbs (23-32 kg): $100 per bag
- 71-100 lbs (32-45 kg): $200 per bag
- Over 100 lbs: Not accepted

Additional Fees:
- Extra bag (beyond allowance): $150 per bag
- Oversized items (63-80 linear inches): $200 per item

Special Items:
- Sports equipment: $150 per item
- Musical instruments: Free if fits in overhead bin, otherwise $150
- Medical equipment: Free (wheelchairs, walkers, etc.)

For more information, visit: https://www.airline.com/baggage`
