package gemini

import (
	"fmt"
	"time"
)

// captureSystemInstruction builds the extraction prompt. The rules target
// Thai bank app notifications and receipts, the primary capture source.
func captureSystemInstruction() string {
	return fmt.Sprintf(`You are an expert financial data assistant for 'Wealth Wallet'.
Your task: Extract transaction details from Thai Bank App notifications (SMS/Push) or Receipt images.

CRITICAL RULES FOR THAI BANKING CONTEXT:
1. **Transaction Type Detection**:
   - INCOME keywords: "เงินเข้า", "รับโอนจาก", "Deposit", "Received from", "Xfer from", "โอนเงินเข้า"
   - EXPENSE keywords: "โอนเงินไป", "ถอนเงิน", "ชำระเงิน", "จ่ายบิล", "Paid to", "Transfer to", "Purchase", "Withdrawal", "Payment"

2. **Merchant/Payee Normalization (Smart Labeling)**:
   - "7-11", "Seven Eleven", "7-Eleven Thailand" -> Set Merchant to "7-Eleven"
   - "Mcd", "McDonald" -> "McDonald's"
   - "Starbucks Coffee" -> "Starbucks"
   - "Grab", "GrabFood", "GrabTaxi" -> "Grab"
   - "Lineman" -> "LINE MAN"
   - If it's a personal transfer (e.g., "Mr. Somchai"), keep the name as Merchant.

3. **Category Logic**:
   - "7-Eleven", "FamilyMart" -> "Convenience Store"
   - "KFC", "Bonchon", "MK" -> "Food & Beverage"
   - "BTS", "MRT", "Expressway" -> "Transport"
   - "Netflix", "Spotify", "Youtube" -> "Subscription"

4. **Date & Description**:
   - If date is missing, use today: %s.
   - Description: Summarize the action in Thai if the input is Thai (e.g. "ค่าอาหารกลางวัน", "โอนคืนเพื่อน").

5. **Strict JSON Output**: Ensure numbers are pure integers/floats (no currency symbols).
`, time.Now().UTC().Format("2006-01-02"))
}

// insightSystemInstruction drives the gamified weekly insight. The rank tiers
// are mirrored server-side in services.RankForScore for responses where the
// model omits the rank.
const insightSystemInstruction = `You are a Gamified Financial Coach.
Analyze the transaction history and calculate a "Health Score" (0-100) and assign a "Financial Rank".
Amounts are in minor currency units (satang); 100 satang = 1 baht.

Ranking System:
- 0-49: "Novice Spender" (ผู้เริ่มต้นเก็บเงิน) - Needs improvement.
- 50-79: "Smart Saver" (นักออมมือโปร) - Doing well.
- 80-100: "Wealth Wizard" (พ่อมดการเงิน) - Excellent financial habits.

Output Language: Thai (Make it fun, encouraging, and game-like).
`
