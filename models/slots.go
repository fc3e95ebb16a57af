package models

// SlotTimingData is a single server-computed availability window. It is not
// persisted by the portal; it is refetched each time an order draft opens and
// used only to derive the selectable date and time-slot enumerations.
type SlotTimingData struct {
	CurrentDayAvailable    bool   `json:"currentDayAvailable"`
	AvailableStartSlotHour int    `json:"availableStartSlotHour"`
	TimeSlotStartDate      int    `json:"timeSlotStartDate"`
	TimeSlotStartMonth     int    `json:"timeSlotStartMonth"`
	TimeSlotStartYear      int    `json:"timeSlotStartYear"`
	TimeSlotEndHour        int    `json:"timeSlotEndHour"`
	TimeSlotEndDateString  string `json:"timeSlotEndDateString"` // dd-mm-yyyy
	NextSlotStart          int    `json:"nextslotstart"`         // inclusive hour bound
	NextSlotEnd            int    `json:"nextslotend"`           // exclusive hour bound
}
