package testutil

// SampleMARTe is a small but complete application: two states sharing a
// thread layout, a grouped function, four data sources of which one is never
// bound, and a state machine.
const SampleMARTe = `
$TestApp = {
    Class = RealTimeApplication
    +Functions = {
        Class = ReferenceContainer
        +Timer = {
            Class = IOGAM
            InputSignals = {
                Counter = { DataSource = Clock Type = uint32 }
            }
            OutputSignals = {
                Counter = { DataSource = DDB1 Type = uint32 }
            }
        }
        +Control = {
            Class = ReferenceContainer
            +PID = {
                Class = PIDGAM
                InputSignals = {
                    Counter = { DataSource = DDB1 Type = uint32 }
                    Missing = { DataSource = NoSuchSource Type = uint32 }
                }
                OutputSignals = {
                    Out = { DataSource = Logger Type = float32 }
                }
            }
        }
    }
    +Data = {
        Class = ReferenceContainer
        DefaultDataSource = DDB1
        +Clock = { Class = LinuxTimer }
        +DDB1 = { Class = GAMDataSource }
        +Logger = { Class = LoggerDataSource }
        +Timings = { Class = TimingDataSource }
    }
    +States = {
        Class = ReferenceContainer
        +Idle = {
            Class = RealTimeState
            +Threads = {
                Class = ReferenceContainer
                +Thread1 = {
                    Class = RealTimeThread
                    Functions = { Timer }
                }
            }
        }
        +Running = {
            Class = RealTimeState
            +Threads = {
                Class = ReferenceContainer
                +Thread1 = {
                    Class = RealTimeThread
                    Functions = { Timer Control.PID }
                }
            }
        }
    }
}
+StateMachine = {
    Class = StateMachine
    +INITIAL = {
        Class = ReferenceContainer
        +START = {
            Class = StateMachineEvent
            NextState = "IDLE"
            NextStateError = "ERROR"
            +PrepareChangeToIdle = { Class = Message }
        }
    }
    +IDLE = {
        Class = ReferenceContainer
        +ENTER = {
            Class = ReferenceContainer
            +SetStatus = { Class = Message }
        }
        +GOTORUN = {
            Class = StateMachineEvent
            NextState = "RUN"
            NextStateError = "ERROR"
            +ChangeToRunMsg = { Class = Message }
            +StartLogging = { Class = Message }
        }
    }
}
`

// SampleWithoutStateMachine is SampleMARTe reduced to a single state and no
// state machine.
const SampleWithoutStateMachine = `
$TestApp = {
    Class = RealTimeApplication
    +Functions = {
        Class = ReferenceContainer
        +Timer = {
            Class = IOGAM
            OutputSignals = {
                Counter = { DataSource = DDB1 Type = uint32 }
            }
        }
    }
    +Data = {
        Class = ReferenceContainer
        +DDB1 = { Class = GAMDataSource }
    }
    +States = {
        Class = ReferenceContainer
        +Idle = {
            Class = RealTimeState
            +Threads = {
                Class = ReferenceContainer
                +Thread1 = {
                    Class = RealTimeThread
                    Functions = { Timer }
                }
            }
        }
    }
}
`
